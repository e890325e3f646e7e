package explore

// Stop is one scene on an exploration walk.
type Stop struct {
	Scene string
	Fact  string
}

// stops maps exploration level IDs to their walk, in order.
var stops = map[string][]Stop{
	"w1-l3": {
		{
			Scene: "You step onto the harbor boardwalk. Painted marks on a piling show where the tide reached ten years ago, and where it reaches now.",
			Fact:  "Around the world, sea level has been creeping up a few millimeters every year.",
		},
		{
			Scene: "A crew is bolting a new flood gate across the marina entrance. It stands open today, letting boats glide through.",
			Fact:  "Flood gates stay open for ships and close only when a storm pushes the sea too high.",
		},
		{
			Scene: "Behind the dunes, volunteers are planting beach grass in long wavy rows.",
			Fact:  "Grass roots stitch the dunes together, so storms can't wash the sand away as fast.",
		},
		{
			Scene: "From the pier's end you watch the tide gauge bob. A solar panel keeps its radio ticking.",
			Fact:  "Gauges like this send water heights to scientists every few minutes, year after year.",
		},
	},
	"w2-l3": {
		{
			Scene: "The ranger hands you a map at the trailhead. A wide bare strip runs along the ridge like a part in the forest's hair.",
			Fact:  "That strip is a firebreak. With nothing to burn, many fires stop right there.",
		},
		{
			Scene: "You pass a stand of pines with blackened bark but green, living crowns.",
			Fact:  "Some trees survive small fires. Their thick bark works like an oven mitt.",
		},
		{
			Scene: "A goat herd munches dry brush under the power lines, watched by a very serious dog.",
			Fact:  "Goats are hired as firefighters. They eat the fuel before a spark can find it.",
		},
		{
			Scene: "At the lookout tower you climb to the top. The ranger shows you how to scan the horizon for smoke.",
			Fact:  "One lookout can watch thousands of hectares of forest at once.",
		},
	},
	"w3-l3": {
		{
			Scene: "An elevator ride later, you step onto a rooftop meadow humming with bees, four floors above the traffic.",
			Fact:  "Green roofs can be 20 degrees cooler than bare tar roofs on a summer day.",
		},
		{
			Scene: "The gardener shows you tomato beds fed by a tank of collected rainwater.",
			Fact:  "A roof garden drinks the same rain that would otherwise flood the street drains.",
		},
		{
			Scene: "You press a hand on a white-painted section of roof, then on a black one. One is warm, one is scorching.",
			Fact:  "White surfaces reflect sunlight, which keeps the whole building cooler below.",
		},
		{
			Scene: "Looking across the skyline, you count five more rooftop gardens you never knew were there.",
			Fact:  "City by city, cool roofs and gardens are shaving the edge off heat waves.",
		},
	},
	"w4-l3": {
		{
			Scene: "The seed bank's steel door swings open to a room colder than a refrigerator, lined with silver packets.",
			Fact:  "Seeds sleep for decades when kept cold and dry, ready to grow when needed.",
		},
		{
			Scene: "A scientist shows you two wheat seeds that look identical. One can survive three extra weeks without rain.",
			Fact:  "Breeders hunt through old seed collections for crops that shrug off drought.",
		},
		{
			Scene: "In the test garden, rows of millet stand tall and green while the lawn beyond the fence is brown.",
			Fact:  "Millet and sorghum are champions at growing food on very little water.",
		},
		{
			Scene: "You seal a packet of beans from your region and place it in the vault with your name on the label.",
			Fact:  "Every packet stored is a backup copy of food for the future.",
		},
	},
	"w5-l3": {
		{
			Scene: "Your canoe slips between mangrove roots that arch out of the water like frozen lightning.",
			Fact:  "A wide mangrove belt can soak up most of a storm wave before it reaches town.",
		},
		{
			Scene: "The guide points out young mangrove shoots planted in neat lines by school kids last year.",
			Fact:  "Replanted mangroves grow into a living seawall in just a few years.",
		},
		{
			Scene: "A heron stalks fish in the shallows. Tiny crabs pop in and out of mud holes around the roots.",
			Fact:  "Mangrove forests are nurseries. Many ocean fish start life hiding in these roots.",
		},
		{
			Scene: "Back at the dock, a sign shows the delta from above: green mangrove ribbons hugging every channel.",
			Fact:  "Mud trapped by the roots slowly raises the land, helping the delta keep pace with the sea.",
		},
	},
	"w6-l3": {
		{
			Scene: "Crampons on, you follow the guide up the glacier's flank. A line of stakes marches up the ice ahead of you.",
			Fact:  "The stakes measure melt. Some summers the surface drops by several meters.",
		},
		{
			Scene: "You pass a roaring blue stream cutting through the ice, vanishing into a hole with no bottom in sight.",
			Fact:  "Meltwater rivers drill through glaciers and rush out at the bottom, headed for the sea.",
		},
		{
			Scene: "The guide shows you a photo from fifty years ago. The ice once buried the ridge you're standing on.",
			Fact:  "Photographs are proof: most of the world's mountain glaciers are shrinking.",
		},
		{
			Scene: "At the summit the wind drops. Below, the white glacier pours between dark peaks toward a milky green lake.",
			Fact:  "Glacier lakes store summer water for the valleys below, one more reason to keep the ice.",
		},
	},
}

// StopsForLevel returns the walk for an exploration level, or nil.
func StopsForLevel(levelID string) []Stop {
	return stops[levelID]
}
