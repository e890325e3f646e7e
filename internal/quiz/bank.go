package quiz

// bank maps quiz level IDs to their questions. Each list length matches the
// level's MaxScore in the content tables (one point per question).
var bank = map[string][]Question{
	"w1-l1": {
		{
			Prompt:       "Why is the sea slowly rising?",
			Options:      []string{"Whales are getting bigger", "Warming water expands and ice sheets melt", "The Moon is pulling harder", "Boats push the water up"},
			CorrectIndex: 1,
			Fact:         "Warmer water takes up more space, and melting ice adds even more water to the ocean.",
		},
		{
			Prompt:       "What can a harbor town build to hold back high tides?",
			Options:      []string{"A seawall", "A treehouse", "A windmill", "A lighthouse"},
			CorrectIndex: 0,
			Fact:         "Seawalls and dikes are walls along the shore that keep high water out of streets and homes.",
		},
		{
			Prompt:       "Which plant helps protect coasts from waves?",
			Options:      []string{"Cactus", "Sunflower", "Mangrove", "Tumbleweed"},
			CorrectIndex: 2,
			Fact:         "Mangrove roots grip the mud and slow waves down before they reach land.",
		},
		{
			Prompt:       "Where is the safest place during a coastal storm warning?",
			Options:      []string{"On the beach watching waves", "High ground away from the shore", "In a rowboat", "Under the pier"},
			CorrectIndex: 1,
			Fact:         "Moving to high ground early is the best protection from storm surge.",
		},
		{
			Prompt:       "What does a tide gauge measure?",
			Options:      []string{"Wind speed", "How salty the sea is", "The height of the water", "Fish sizes"},
			CorrectIndex: 2,
			Fact:         "Tide gauges track water height so scientists can spot rising seas over many years.",
		},
	},
	"w2-l1": {
		{
			Prompt:       "What is a firebreak?",
			Options:      []string{"A gap in trees and grass that stops fire spreading", "A break firefighters take", "A kind of campfire", "A burnt cookie"},
			CorrectIndex: 0,
			Fact:         "Fires need fuel. A cleared strip of land leaves the fire nothing to burn.",
		},
		{
			Prompt:       "Which weather makes wildfires more likely?",
			Options:      []string{"Cold and snowy", "Hot, dry and windy", "Rainy and calm", "Foggy mornings"},
			CorrectIndex: 1,
			Fact:         "Heat dries out plants, and wind pushes flames fast. Dry + windy = danger.",
		},
		{
			Prompt:       "What should you do if you see smoke in the forest?",
			Options:      []string{"Get closer to look", "Tell an adult and call emergency services", "Hide behind a tree", "Ignore it"},
			CorrectIndex: 1,
			Fact:         "Small fires caught early are much easier to stop. Reporting helps everyone.",
		},
		{
			Prompt:       "Why do some trees survive fires better than others?",
			Options:      []string{"They can run away", "Thick bark protects the living wood inside", "They are wet inside", "Fire is afraid of tall trees"},
			CorrectIndex: 1,
			Fact:         "Trees like cork oaks have thick bark that works like a fire-proof jacket.",
		},
		{
			Prompt:       "What is a safe campfire rule?",
			Options:      []string{"Leave it burning overnight", "Build it under dry branches", "Put it out completely with water before leaving", "Make it as big as possible"},
			CorrectIndex: 2,
			Fact:         "A campfire is only out when the ashes are cold enough to touch.",
		},
	},
	"w3-l1": {
		{
			Prompt:       "Why are cities often hotter than the countryside?",
			Options:      []string{"More sunshine falls on cities", "Dark roads and roofs soak up heat", "City people cook more", "The countryside has air conditioning"},
			CorrectIndex: 1,
			Fact:         "This is called the urban heat island effect. Asphalt and concrete store the sun's heat.",
		},
		{
			Prompt:       "What color roof stays coolest in the sun?",
			Options:      []string{"Black", "Dark green", "White", "Brown"},
			CorrectIndex: 2,
			Fact:         "Light colors reflect sunlight instead of absorbing it. Cool roofs can be 30°C cooler.",
		},
		{
			Prompt:       "How do street trees help on hot days?",
			Options:      []string{"They give shade and release cooling moisture", "They block the wind", "They attract clouds", "They paint the street green"},
			CorrectIndex: 0,
			Fact:         "A shaded street can feel 10°C cooler than one in full sun.",
		},
		{
			Prompt:       "What is the best drink during a heat wave?",
			Options:      []string{"Water", "Hot chocolate", "Nothing", "Salty soup only"},
			CorrectIndex: 0,
			Fact:         "Your body sweats to cool off, so it needs plenty of water to keep going.",
		},
		{
			Prompt:       "When is it coolest to play outside in summer?",
			Options:      []string{"Noon", "Early morning or evening", "Mid afternoon", "Whenever"},
			CorrectIndex: 1,
			Fact:         "The sun is strongest in the middle of the day. Mornings and evenings are safer.",
		},
	},
	"w4-l1": {
		{
			Prompt:       "What is a drought?",
			Options:      []string{"A long time with much less rain than usual", "A type of storm", "A dry joke", "A desert animal"},
			CorrectIndex: 0,
			Fact:         "Droughts build slowly. Rivers shrink, soil cracks, and plants struggle to grow.",
		},
		{
			Prompt:       "Which watering method wastes the least water on a farm?",
			Options:      []string{"Spraying at noon", "Drip irrigation at the roots", "Flooding the whole field", "Hoping for rain"},
			CorrectIndex: 1,
			Fact:         "Drip lines deliver water drop by drop right where plants drink, losing almost none.",
		},
		{
			Prompt:       "Why do farmers plant cover crops?",
			Options:      []string{"To look pretty", "To keep soil moist and stop it blowing away", "To feed birds", "To hide from satellites"},
			CorrectIndex: 1,
			Fact:         "Covered soil stays cooler and holds water far better than bare earth.",
		},
		{
			Prompt:       "Which habit saves water at home?",
			Options:      []string{"Turning off the tap while brushing teeth", "Longer showers", "Washing half-empty loads", "Watering the lawn at midday"},
			CorrectIndex: 0,
			Fact:         "A running tap wastes about 6 liters a minute. Small habits add up.",
		},
		{
			Prompt:       "What is a rain barrel for?",
			Options:      []string{"Making pickles", "Catching roof water to use in the garden", "Keeping fish", "Rolling down hills"},
			CorrectIndex: 1,
			Fact:         "Stored rainwater keeps gardens alive through dry spells without using tap water.",
		},
	},
	"w5-l1": {
		{
			Prompt:       "What often causes river floods?",
			Options:      []string{"Too many fish", "Heavy rain falling faster than rivers can carry away", "Boats going too fast", "Cold weather"},
			CorrectIndex: 1,
			Fact:         "Climate change makes heavy downpours more common, so rivers overflow more often.",
		},
		{
			Prompt:       "What are sandbags used for?",
			Options:      []string{"Building castles", "Blocking floodwater from doors and streets", "Exercising", "Feeding camels"},
			CorrectIndex: 1,
			Fact:         "A well-stacked sandbag wall steers shallow floodwater away from buildings.",
		},
		{
			Prompt:       "Why are wetlands called nature's sponges?",
			Options:      []string{"They are yellow", "They soak up floodwater and release it slowly", "Frogs use them to wash", "They are full of holes"},
			CorrectIndex: 1,
			Fact:         "One hectare of wetland can hold millions of liters of floodwater.",
		},
		{
			Prompt:       "What should you never do during a flood?",
			Options:      []string{"Move to upper floors", "Listen to warnings", "Walk or drive through floodwater", "Help neighbors get ready"},
			CorrectIndex: 2,
			Fact:         "Just 15 cm of moving water can knock you over, and 60 cm can float a car.",
		},
		{
			Prompt:       "How does a floodplain help a city downstream?",
			Options:      []string{"It gives water a safe place to spread out", "It speeds the river up", "It makes the river deeper", "It scares the water away"},
			CorrectIndex: 0,
			Fact:         "Letting rivers spill into empty floodplains protects the towns further down.",
		},
		{
			Prompt:       "What is an early warning system?",
			Options:      []string{"An alarm clock", "Sensors and alerts that warn people before disaster hits", "A loud frog", "A weather vane"},
			CorrectIndex: 1,
			Fact:         "Every hour of warning gives families time to move themselves and their things to safety.",
		},
	},
	"w6-l1": {
		{
			Prompt:       "Why are glaciers shrinking?",
			Options:      []string{"People are taking the ice for drinks", "Warmer air melts more ice than winter snow replaces", "They are sliding into caves", "Polar bears eat them"},
			CorrectIndex: 1,
			Fact:         "Most mountain glaciers have been retreating for decades as the planet warms.",
		},
		{
			Prompt:       "Why does melting land ice raise the sea?",
			Options:      []string{"The water flows into the ocean", "Ice is heavier than water", "It doesn't", "The sea gets jealous"},
			CorrectIndex: 0,
			Fact:         "Ice resting on land adds new water to the sea when it melts, unlike floating sea ice.",
		},
		{
			Prompt:       "What do many mountain villages depend on glaciers for?",
			Options:      []string{"Ski jumps", "Summer drinking and farming water", "Ice sculptures", "Refrigeration"},
			CorrectIndex: 1,
			Fact:         "Glaciers store winter snow and release it as meltwater all summer long.",
		},
		{
			Prompt:       "What is permafrost?",
			Options:      []string{"Ground that stays frozen all year", "A frosty drink", "Winter that never ends", "A type of penguin"},
			CorrectIndex: 0,
			Fact:         "When permafrost thaws, roads and houses built on it can crack and sink.",
		},
		{
			Prompt:       "How do scientists watch glaciers change?",
			Options:      []string{"Asking mountain goats", "Satellites, photos and stakes measured every year", "Guessing", "Counting snowflakes"},
			CorrectIndex: 1,
			Fact:         "Comparing old and new photos of the same glacier shows the ice pulling back.",
		},
		{
			Prompt:       "Which choice helps slow the warming that melts ice?",
			Options:      []string{"Leaving lights on", "Walking, cycling and saving energy", "Burning more coal", "Buying more plastic toys"},
			CorrectIndex: 1,
			Fact:         "Using less energy means burning less fuel, which means less heat-trapping gas.",
		},
	},
}
