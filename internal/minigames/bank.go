package minigames

// bank maps sorting and matching level IDs to their rounds. Each list
// length matches the level's MaxScore in the content tables.
var bank = map[string][]Round{
	// Sorting: does each thing protect the coast from rising seas?
	"w1-l2": {
		{
			Prompt:       "Mangrove trees along the shore",
			Options:      []string{"Protects the coast", "Doesn't help"},
			CorrectIndex: 0,
			Fact:         "Mangrove roots hold the mud together and take the punch out of waves.",
		},
		{
			Prompt:       "Tall sand dunes with beach grass",
			Options:      []string{"Protects the coast", "Doesn't help"},
			CorrectIndex: 0,
			Fact:         "Dunes are natural walls of sand. The grass keeps them from blowing away.",
		},
		{
			Prompt:       "An ice cream stand on the pier",
			Options:      []string{"Protects the coast", "Doesn't help"},
			CorrectIndex: 1,
			Fact:         "Tasty, but it won't stop a single wave.",
		},
		{
			Prompt:       "Heavy stone seawall blocks",
			Options:      []string{"Protects the coast", "Doesn't help"},
			CorrectIndex: 0,
			Fact:         "Seawalls take the force of the waves so streets and houses don't have to.",
		},
		{
			Prompt:       "A beach umbrella stuck in the sand",
			Options:      []string{"Protects the coast", "Doesn't help"},
			CorrectIndex: 1,
			Fact:         "Umbrellas block sunshine, not seawater.",
		},
		{
			Prompt:       "A dike gate that closes at high tide",
			Options:      []string{"Protects the coast", "Doesn't help"},
			CorrectIndex: 0,
			Fact:         "Storm gates swing shut when the sea gets high, like a front door for the harbor.",
		},
	},

	// Matching: pick the right tool for each wildfire job.
	"w2-l2": {
		{
			Prompt:       "Clear a strip of bare ground so fire can't cross",
			Options:      []string{"Bulldozer", "Garden hose", "Leaf blower"},
			CorrectIndex: 0,
			Fact:         "A firebreak is a gap with nothing to burn. Bulldozers scrape one fast.",
		},
		{
			Prompt:       "Spot smoke from far away",
			Options:      []string{"Microscope", "Lookout tower", "Megaphone"},
			CorrectIndex: 1,
			Fact:         "Fire lookouts sit on high towers and scan the forest for the first wisp of smoke.",
		},
		{
			Prompt:       "Drop water on flames from the sky",
			Options:      []string{"Hot air balloon", "Kite", "Water-bomber plane"},
			CorrectIndex: 2,
			Fact:         "Water-bombers scoop from lakes and drop thousands of liters in one pass.",
		},
		{
			Prompt:       "Warn a town that fire is coming",
			Options:      []string{"Emergency alert", "Smoke signal", "Carrier pigeon"},
			CorrectIndex: 0,
			Fact:         "Phone alerts and sirens give people time to leave early, which saves the most lives.",
		},
		{
			Prompt:       "Keep sparks away from a house",
			Options:      []string{"Dry leaves in the gutter", "Cleared yard", "Wooden fence to the door"},
			CorrectIndex: 1,
			Fact:         "A tidy, cleared space around a house gives embers nothing easy to light.",
		},
		{
			Prompt:       "Put out a tiny campfire the right way",
			Options:      []string{"Kick dirt and walk away", "Drown it, stir it, feel it", "Let the wind do it"},
			CorrectIndex: 1,
			Fact:         "Firefighters say: drown, stir, and feel with the back of your hand until it's cold.",
		},
	},

	// Sorting: does each thing cool the city or heat it up?
	"w3-l2": {
		{
			Prompt:       "Painting rooftops white",
			Options:      []string{"Cools the city", "Heats the city"},
			CorrectIndex: 0,
			Fact:         "Light colors bounce sunshine back instead of soaking it up.",
		},
		{
			Prompt:       "Planting trees along the street",
			Options:      []string{"Cools the city", "Heats the city"},
			CorrectIndex: 0,
			Fact:         "A shaded street can feel 10 degrees cooler than a bare one.",
		},
		{
			Prompt:       "Wide black asphalt parking lots",
			Options:      []string{"Cools the city", "Heats the city"},
			CorrectIndex: 1,
			Fact:         "Dark pavement soaks up heat all day and lets it out all night.",
		},
		{
			Prompt:       "Fountains and splash parks",
			Options:      []string{"Cools the city", "Heats the city"},
			CorrectIndex: 0,
			Fact:         "Evaporating water carries heat away, like sweat does for your body.",
		},
		{
			Prompt:       "Rows of idling car engines",
			Options:      []string{"Cools the city", "Heats the city"},
			CorrectIndex: 1,
			Fact:         "Engines pump out hot exhaust right at street level.",
		},
		{
			Prompt:       "Gardens growing on rooftops",
			Options:      []string{"Cools the city", "Heats the city"},
			CorrectIndex: 0,
			Fact:         "Green roofs shade the building and sip up rain at the same time.",
		},
		{
			Prompt:       "Air conditioners blasting into the alley",
			Options:      []string{"Cools the city", "Heats the city"},
			CorrectIndex: 1,
			Fact:         "AC cools the inside by pushing the heat outside, so the street gets warmer.",
		},
		{
			Prompt:       "Shade sails over the playground",
			Options:      []string{"Cools the city", "Heats the city"},
			CorrectIndex: 0,
			Fact:         "Shade keeps slides and swings from turning into frying pans.",
		},
	},

	// Matching: pick the smartest way to water during a drought.
	"w4-l2": {
		{
			Prompt:       "When is the best time to water plants?",
			Options:      []string{"Noon, when it's hottest", "Early morning", "Whenever"},
			CorrectIndex: 1,
			Fact:         "Morning water sinks into the soil before the sun can steal it.",
		},
		{
			Prompt:       "Which watering method wastes the least?",
			Options:      []string{"Drip lines at the roots", "Sprinkler over the sidewalk", "Bucket thrown from far away"},
			CorrectIndex: 0,
			Fact:         "Drip irrigation delivers water drop by drop, straight to the roots.",
		},
		{
			Prompt:       "What should cover the soil around plants?",
			Options:      []string{"Plastic sheet", "Nothing", "Mulch"},
			CorrectIndex: 2,
			Fact:         "A blanket of mulch keeps soil moist and cool, so you water less often.",
		},
		{
			Prompt:       "Which plants handle dry summers best?",
			Options:      []string{"Native wildflowers", "Thirsty lawn grass", "Rainforest ferns"},
			CorrectIndex: 0,
			Fact:         "Plants that grew up in a place already know how to live on its rain.",
		},
		{
			Prompt:       "Where can free extra water come from?",
			Options:      []string{"A rain barrel under the gutter", "The neighbor's pool", "Bottled water"},
			CorrectIndex: 0,
			Fact:         "One good storm on a roof can fill several barrels for dry weeks ahead.",
		},
		{
			Prompt:       "How do you check if the garden needs water?",
			Options:      []string{"Water daily just in case", "Poke a finger into the soil", "Wait for leaves to fall off"},
			CorrectIndex: 1,
			Fact:         "If the soil is damp a finger deep, the plants are fine. Skip a day.",
		},
		{
			Prompt:       "A sprinkler is running while it rains. What now?",
			Options:      []string{"Turn it off", "Add a second sprinkler", "Leave it, rain helps"},
			CorrectIndex: 0,
			Fact:         "Smart sprinkler timers have rain sensors for exactly this reason.",
		},
		{
			Prompt:       "What helps a farm through a long drought?",
			Options:      []string{"Planting thirstier crops", "Storing water in covered tanks", "Watering at full blast"},
			CorrectIndex: 1,
			Fact:         "Covered tanks and ponds save winter rain for the driest months, without evaporating.",
		},
	},

	// Sorting: before the flood arrives, smart move or bad idea?
	"w5-l2": {
		{
			Prompt:       "Stack sandbags across the doorway",
			Options:      []string{"Smart move", "Bad idea"},
			CorrectIndex: 0,
			Fact:         "A well-built sandbag wall steers shallow water away from doors.",
		},
		{
			Prompt:       "Carry valuables up to the top floor",
			Options:      []string{"Smart move", "Bad idea"},
			CorrectIndex: 0,
			Fact:         "Flood water fills the lowest rooms first. Up is safe.",
		},
		{
			Prompt:       "Walk through the flooded street to look around",
			Options:      []string{"Smart move", "Bad idea"},
			CorrectIndex: 1,
			Fact:         "Just 15 cm of moving water can knock you off your feet.",
		},
		{
			Prompt:       "Keep the radio on for flood warnings",
			Options:      []string{"Smart move", "Bad idea"},
			CorrectIndex: 0,
			Fact:         "Warnings tell you when to leave and which roads are still open.",
		},
		{
			Prompt:       "Drive the car through the flooded underpass",
			Options:      []string{"Smart move", "Bad idea"},
			CorrectIndex: 1,
			Fact:         "Half a meter of water can float a car away. Turn around, don't drown.",
		},
		{
			Prompt:       "Charge the flashlight and phone now",
			Options:      []string{"Smart move", "Bad idea"},
			CorrectIndex: 0,
			Fact:         "Floods often knock the power out. Charge everything before, not after.",
		},
		{
			Prompt:       "Ignore the sirens, the river looks calm",
			Options:      []string{"Smart move", "Bad idea"},
			CorrectIndex: 1,
			Fact:         "Flood waves travel from upstream rain you can't see. Trust the siren.",
		},
		{
			Prompt:       "Agree on a family meeting spot on high ground",
			Options:      []string{"Smart move", "Bad idea"},
			CorrectIndex: 0,
			Fact:         "A meeting spot means nobody has to search for anybody when minutes count.",
		},
	},

	// Matching: help each polar friend find what it needs.
	"w6-l2": {
		{
			Prompt:       "A penguin chick needs a safe nursery",
			Options:      []string{"Stable sea ice", "A warm beach", "A city park"},
			CorrectIndex: 0,
			Fact:         "Emperor penguins raise chicks on sea ice. When it breaks up early, chicks can be lost.",
		},
		{
			Prompt:       "A polar bear needs a hunting platform",
			Options:      []string{"A sand dune", "Drifting pack ice", "A pine forest"},
			CorrectIndex: 1,
			Fact:         "Polar bears wait beside seal breathing holes in the ice. No ice, no hunting ground.",
		},
		{
			Prompt:       "Meltwater from glaciers ends up where?",
			Options:      []string{"It disappears", "Back into the glacier", "In the rising sea"},
			CorrectIndex: 2,
			Fact:         "Mountain glaciers and ice sheets drain to the ocean, nudging sea levels up.",
		},
		{
			Prompt:       "Scientists measure a glacier's health with",
			Options:      []string{"Stakes and satellites", "A thermometer in the snow", "Binoculars only"},
			CorrectIndex: 0,
			Fact:         "Stakes show how much ice melts each summer, and satellites watch the whole glacier shrink.",
		},
		{
			Prompt:       "A krill swarm needs",
			Options:      []string{"Warm shallow water", "Algae under the sea ice", "Bright sunlight all day"},
			CorrectIndex: 1,
			Fact:         "Krill graze on algae that grows under the ice, and almost everything else eats krill.",
		},
		{
			Prompt:       "White ice helps the whole planet by",
			Options:      []string{"Reflecting sunlight away", "Making clouds", "Slowing the wind"},
			CorrectIndex: 0,
			Fact:         "Bright ice bounces sunshine back to space. Dark open water soaks it up instead.",
		},
		{
			Prompt:       "A walrus hauls out to rest on",
			Options:      []string{"Sea ice near its food", "A coral reef", "A river bank"},
			CorrectIndex: 0,
			Fact:         "Walruses dive for clams, then rest on nearby ice. Long swims to shore exhaust them.",
		},
		{
			Prompt:       "The best human help for polar animals is",
			Options:      []string{"Feeding them fish", "Slowing the warming", "Bringing them south"},
			CorrectIndex: 1,
			Fact:         "Keeping the planet cooler keeps the ice, and the ice keeps everyone above it alive.",
		},
	},
}
