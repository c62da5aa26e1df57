package teams

// NFL lists the league's teams with their Sportradar NFL v7 IDs.
var NFL = NewDirectory([]Team{
	{ID: "de760528-1dc0-416a-a978-b510d20692ff", Market: "Arizona", Name: "Cardinals", Alias: "ARI"},
	{ID: "e6aa13a4-0055-48a9-bc41-be28dc106929", Market: "Atlanta", Name: "Falcons", Alias: "ATL"},
	{ID: "ebd87119-b331-4469-9ea6-d51fe3ce2f1c", Market: "Baltimore", Name: "Ravens", Alias: "BAL"},
	{ID: "768c92aa-75ff-4a43-bcc0-f2798c2e1724", Market: "Buffalo", Name: "Bills", Alias: "BUF"},
	{ID: "f14bf5cc-9a82-4a38-bc15-d39f75ed5314", Market: "Carolina", Name: "Panthers", Alias: "CAR"},
	{ID: "7b112545-38e6-483c-a55c-96cf6ee49cb8", Market: "Chicago", Name: "Bears", Alias: "CHI"},
	{ID: "ad4ae08f-d808-42d5-a1e6-e9bc4e34d123", Market: "Cincinnati", Name: "Bengals", Alias: "CIN"},
	{ID: "d5a2eb42-8065-4174-ab79-0a6fa820e35e", Market: "Cleveland", Name: "Browns", Alias: "CLE"},
	{ID: "e627eec7-bbae-4fa4-8e73-8e1d6bc5c060", Market: "Dallas", Name: "Cowboys", Alias: "DAL"},
	{ID: "ce92bd47-93d5-4fe9-ada4-0fc681e6caa0", Market: "Denver", Name: "Broncos", Alias: "DEN"},
	{ID: "c5a59daa-53a7-4de0-851f-fb12be893e9e", Market: "Detroit", Name: "Lions", Alias: "DET"},
	{ID: "a20471b4-a8d9-40c7-95ad-90cc30e46932", Market: "Green Bay", Name: "Packers", Alias: "GB"},
	{ID: "82d2d380-3834-4938-835f-aec541e5ece7", Market: "Houston", Name: "Texans", Alias: "HOU"},
	{ID: "82cf9565-6eb9-4f01-bdbd-5aa0d472fcd9", Market: "Indianapolis", Name: "Colts", Alias: "IND"},
	{ID: "f7ddd7fa-0bae-4f90-bc8e-669e4d6cf2de", Market: "Jacksonville", Name: "Jaguars", Alias: "JAC"},
	{ID: "6680d28d-d4d2-49f6-aace-5292d3ec02c2", Market: "Kansas City", Name: "Chiefs", Alias: "KC"},
	{ID: "7d4fcc64-9cb5-4d1b-8e75-8a906d1e1576", Market: "Las Vegas", Name: "Raiders", Alias: "LV"},
	{ID: "1f6dcffb-9823-43cd-9ff4-e7a8466749b5", Market: "Los Angeles", Name: "Chargers", Alias: "LAC"},
	{ID: "2eff2a03-54d4-46ba-890e-2bc3925548f3", Market: "Los Angeles", Name: "Rams", Alias: "LA"},
	{ID: "4809ecb0-abd3-451d-9c4a-92a90b83ca06", Market: "Miami", Name: "Dolphins", Alias: "MIA"},
	{ID: "33405046-04ee-4058-a950-d606f8c30852", Market: "Minnesota", Name: "Vikings", Alias: "MIN"},
	{ID: "97354895-8c77-4fd4-a860-32e62ea7382a", Market: "New England", Name: "Patriots", Alias: "NE"},
	{ID: "0d855753-ea21-4953-89f9-0e20aff9eb73", Market: "New Orleans", Name: "Saints", Alias: "NO"},
	{ID: "04aa1c9d-66da-489d-b16a-1dee3f2eec4d", Market: "New York", Name: "Giants", Alias: "NYG"},
	{ID: "5fee86ae-74ab-4bdd-8416-42a9dd9964f3", Market: "New York", Name: "Jets", Alias: "NYJ"},
	{ID: "386bdbf9-9eea-4869-bb9a-274b0bc66e80", Market: "Philadelphia", Name: "Eagles", Alias: "PHI"},
	{ID: "cb2f9f1f-ac67-424e-9e72-1475cb0ed398", Market: "Pittsburgh", Name: "Steelers", Alias: "PIT"},
	{ID: "f0e724b0-4cbf-495a-be47-013907608da9", Market: "San Francisco", Name: "49ers", Alias: "SF"},
	{ID: "3d08af9e-c767-4f88-a7dc-b920c6d2b4a8", Market: "Seattle", Name: "Seahawks", Alias: "SEA"},
	{ID: "4254d319-1bc7-4f81-b4ab-b5e6f3402b69", Market: "Tampa Bay", Name: "Buccaneers", Alias: "TB"},
	{ID: "d26a1ca5-722d-4274-8f97-c92e49c96315", Market: "Tennessee", Name: "Titans", Alias: "TEN"},
	{ID: "22052ff7-c065-42ee-bc8f-c4691c50e624", Market: "Washington", Name: "Commanders", Alias: "WAS"},
})
