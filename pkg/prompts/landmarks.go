package prompts

import "github.com/dskvich/location-images/pkg/domain"

// Landmarks are written to images/landmarks.
var Landmarks = domain.PromptTable{
	{
		Slug: "balboa-park",
		Text: `Magnificent documentary photograph of Balboa Park's Spanish Colonial architecture, elegant senior couple in their late 60s strolling through botanical gardens near Casa de Balboa, genuine wonder expressions admiring architecture, lush gardens and ornate buildings framing them. 1915 Exposition buildings, museums, gardens, cultural heart of San Diego.`,
	},
	{
		Slug: "gaslamp-quarter",
		Text: `Historic documentary photograph of San Diego Gaslamp Quarter street scene, distinguished senior man in his late 60s in smart evening attire walking past ornate Victorian gas lamp, genuine enjoyment of evening atmosphere. Restored Victorian buildings, historic gas lamps, entertainment district, downtown vitality.`,
	},
	{
		Slug: "la-jolla-cove",
		Text: `Stunning documentary photograph of La Jolla Cove at golden hour, peaceful senior woman in her early 70s sitting on bench overlooking cove, genuine contemplative expression enjoying ocean view, seals visible on rocks below, palm trees framing scene. Protected marine sanctuary, dramatic cliffs.`,
	},
	{
		Slug: "crystal-pier",
		Text: `Iconic documentary photograph of Pacific Beach Crystal Pier at sunset, active senior couple in their mid-60s walking toward pier cottages, casual beach attire, genuine romantic moment. Historic pier with vacation cottages, PB landmark, surfer culture.`,
	},
	{
		Slug: "hotel-del-coronado",
		Text: `Grand documentary photograph of Hotel del Coronado's iconic Victorian architecture, elegant senior couple in their late 60s walking along the hotel's beachfront veranda at sunset, formal evening attire, genuine sophisticated moment. National Historic Landmark, red turrets, white wooden architecture.`,
	},
	{
		Slug: "old-town-san-diego",
		Text: `Cultural documentary photograph of Old Town San Diego State Historic Park, senior couple in their early 70s exploring historic adobe buildings, genuine curious expressions, colorful Mexican marketplace visible in background. Birthplace of California, historic adobes, cultural heritage.`,
	},
	{
		Slug: "seaport-village",
		Text: `Charming documentary photograph of Seaport Village waterfront, friendly senior woman in her late 60s browsing local artisan shops with harbor views, genuine content expression, carousel and sailboats visible in background. Waterfront shopping village, bay views, local charm.`,
	},
	{
		Slug: "torrey-pines",
		Text: `Natural documentary photograph of Torrey Pines State Natural Reserve, active senior couple in their late 60s hiking along coastal trail, casual outdoor attire, genuine appreciation of dramatic ocean cliff views. Rare Torrey pine trees, stunning bluff-top ocean vistas.`,
	},
	{
		Slug: "san-diego-zoo",
		Text: `Joyful documentary photograph near San Diego Zoo entrance in Balboa Park, grandparent in their late 60s with grandchild viewing animals, genuine delight and wonder expressions, iconic zoo architecture visible. World-famous zoo, conservation, family memories.`,
	},
	{
		Slug: "mission-bay",
		Text: `Active documentary photograph of Mission Bay Park, fit senior couple in their mid-60s walking along bayside path with paddleboarders and kayakers in background, casual active attire, genuine healthy lifestyle moment. Largest aquatic park, watersports, San Diego sunshine.`,
	},
}
