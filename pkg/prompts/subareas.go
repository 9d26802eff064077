package prompts

import "github.com/dskvich/location-images/pkg/domain"

// Subareas are neighbourhood hero images, written to images/subareas.
var Subareas = domain.PromptTable{
	{
		Slug: "downtown-san-diego",
		Text: `Warm documentary photograph of San Diego's Gaslamp Quarter at golden hour, mature couple in their late 60s walking hand-in-hand past historic Victorian buildings and ornate gas lamps, woman in elegant casual attire with pearl earrings, man in linen shirt, genuine smiles sharing a moment together. Gaslamp historic district architecture visible, outdoor cafe patios with diners, warm evening atmosphere suggesting vibrant community life.`,
	},
	{
		Slug: "hillcrest",
		Text: `Vibrant documentary photograph of Hillcrest neighborhood farmers market scene, active senior woman in her early 70s with stylish silver hair examining fresh organic produce at colorful market stall, warm genuine smile connecting with local vendor, reusable shopping bags suggesting healthy active lifestyle. Hillcrest Farmers Market atmosphere: colorful produce displays, diverse community members shopping.`,
	},
	{
		Slug: "north-park",
		Text: `Artistic documentary photograph of North Park's iconic neighborhood at dusk, distinguished senior man in his late 60s with reading glasses walking past local coffee shop with to-go cup, genuine content expression enjoying neighborhood stroll. North Park character: craft beer bars, vintage shops, murals on buildings, eclectic neighborhood vibe.`,
	},
	{
		Slug: "la-jolla-village",
		Text: `Elegant documentary photograph of La Jolla Cove area at mid-morning, sophisticated senior couple in their late 60s seated at upscale outdoor cafe overlooking ocean, woman in tasteful coastal attire with sun hat, man in crisp polo, sharing genuine laughter over coffee. La Jolla Village character: Mediterranean architecture, boutique shops, ocean views.`,
	},
	{
		Slug: "la-jolla-shores",
		Text: `Serene documentary photograph of La Jolla Shores beach at sunrise, fit senior woman in her early 70s in comfortable athletic wear completing morning beach walk, genuine peaceful expression, waves gently breaking in background, Scripps Pier visible in distance. Wide sandy beach, calm waters, family-friendly atmosphere.`,
	},
	{
		Slug: "pacific-beach",
		Text: `Casual documentary photograph of Pacific Beach boardwalk scene, active senior couple in their mid-60s enjoying sunset walk along beachfront, casual beach attire, holding hands, genuine smiles. Crystal Pier visible in background, beach volleyball players, cyclists passing by suggesting active community.`,
	},
	{
		Slug: "ocean-beach",
		Text: `Authentic documentary photograph of Ocean Beach pier area at late afternoon, laid-back senior man in his late 60s with dog on leash walking toward famous Dog Beach, relaxed genuine expression, colorful OB antique shops visible in background. Ocean Beach character: bohemian vibe, Dog Beach, OB Pier.`,
	},
	{
		Slug: "mission-beach",
		Text: `Fun documentary photograph of Mission Beach Belmont Park area, energetic senior couple in their early 70s enjoying casual stroll past historic Giant Dipper roller coaster, genuine smiles suggesting youthful energy. Mission Beach boardwalk character: beachfront attractions, vintage amusement park.`,
	},
	{
		Slug: "point-loma",
		Text: `Historic documentary photograph of Point Loma with Cabrillo National Monument views, distinguished senior man in his late 60s standing at scenic overlook enjoying panoramic San Diego Bay view, thoughtful content expression, well-dressed in smart casual coastal attire. Historic lighthouse, bay views.`,
	},
	{
		Slug: "coronado",
		Text: `Elegant documentary photograph of Coronado with Hotel del Coronado in background, sophisticated senior couple in their late 60s walking along pristine beach, elegant casual beach attire, woman's sun hat and flowing dress suggesting coastal elegance. Iconic red-roofed Hotel del visible.`,
	},
	{
		Slug: "del-mar",
		Text: `Upscale documentary photograph of Del Mar village area, refined senior couple in their early 70s browsing at charming local boutique on Camino Del Mar, sophisticated casual attire, genuine connection moment. Del Mar character: upscale village shops, Torrey Pines views.`,
	},
	{
		Slug: "solana-beach",
		Text: `Artistic documentary photograph of Solana Beach Cedros Design District, creative senior woman in her late 60s with artistic style browsing design shop window, genuine appreciation expression, eclectic design district character visible. Fletcher Cove beach town charm.`,
	},
	{
		Slug: "encinitas",
		Text: `Spiritual documentary photograph of downtown Encinitas near Self-Realization Fellowship, peaceful senior woman in her early 70s in comfortable yoga-inspired attire walking past iconic surf shops and wellness studios, serene genuine expression. Surf culture, spiritual community.`,
	},
	{
		Slug: "carlsbad",
		Text: `Family documentary photograph of Carlsbad Village area near beach, warm senior couple in their late 60s walking with grandchildren, genuine joyful expressions, Carlsbad Village storefronts visible. Family-friendly village, LEGOLAND nearby, Flower Fields, beach town charm.`,
	},
	{
		Slug: "oceanside",
		Text: `Coastal documentary photograph of Oceanside pier and harbor area, active senior man in his late 60s in casual fishing attire walking along harbor with fishing pier visible in background, content genuine expression. Historic pier, harbor, fishing community.`,
	},
	{
		Slug: "clairemont",
		Text: `Neighborhood documentary photograph of Clairemont community park area, friendly senior woman in her early 70s enjoying morning walk on tree-lined path with neighbor, genuine conversation moment, established suburban neighborhood visible. Master-planned community, family neighborhoods.`,
	},
	{
		Slug: "university-city",
		Text: `Academic documentary photograph of University City near UTC area, distinguished senior couple in their late 60s walking near UCSD campus, professional casual attire, intellectual genuine expressions. University City character: UCSD, UTC mall, research institutions.`,
	},
	{
		Slug: "kensington",
		Text: `Charming documentary photograph of Kensington's iconic neighborhood sign and Adams Avenue, refined senior couple in their early 70s at classic neighborhood cafe, genuine warm conversation. Spanish Revival architecture, classic movie theater, walkable village.`,
	},
	{
		Slug: "mission-hills",
		Text: `Elegant documentary photograph of Mission Hills historic district, sophisticated senior woman in her late 60s tending to garden in front of beautiful Craftsman home, genuine proud expression, Fort Stockton Drive character visible. Historic Craftsman homes, Presidio Park nearby.`,
	},
	{
		Slug: "bankers-hill",
		Text: `Urban documentary photograph of Bankers Hill with Balboa Park edge, distinguished senior man in his late 60s walking along tree-lined street toward park entrance, professional casual attire, purposeful genuine expression. Urban walkability, Balboa Park access.`,
	},
}
