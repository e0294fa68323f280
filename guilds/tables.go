package guilds

// Static tables, one entry per deployed guild. The first entry is the main
// clan server, the second the bot testing server.
var profiles = map[string]*Profile{
	"315710189762248705": {
		GuildID: "315710189762248705",
		Roles: Roles{
			TrialHost:          "<@&635646418123751434>",
			Organizer:          "<@&374393957645287426>",
			Admin:              "<@&315714278940213258>",
			Owner:              "<@&722641577733914625>",
			Trialee:            "<@&666034554150322200>",
			TrialeeTeacher:     "<@&664351536583016459>",
			TrialTeam:          "<@&469546608531472385>",
			TrialTeamProbation: "<@&1074057253314908190>",
			ApplicationTeam:    "<@&968901102911246377>",
			SevenMan:           "<@&337723869508927489>",
			Tags: map[TagKey]RoleRef{
				TagMagicMT:     "<@&1063137065673429022>",
				TagMagicBase:   "<@&1063137403998589108>",
				TagRangeMT:     "<@&1063136067949178960>",
				TagRangeBase:   "<@&1063136409621377024>",
				TagChinner:     "<@&1063136286325616730>",
				TagMrMT:        "<@&1021475735128506421>",
				TagMrHammer:    "<@&1021479839003312168>",
				TagMrBase:      "<@&1021476019284213860>",
				TagNecroBase:   "<@&1142304996495470682>",
				TagNecroHammer: "<@&1149840318053757032>",
				TagNecroMT:     "<@&1142304685546537062>",
			},
			Cosmetics: map[CosmeticKey]RoleRef{
				CosmeticKC10k:         "<@&963277353927204864>",
				CosmeticKC20k:         "<@&963277215955583066>",
				CosmeticKC30k:         "<@&963276930910666752>",
				CosmeticKC40k:         "<@&963276807702982676>",
				CosmeticKC50k:         "<@&963276584775720980>",
				CosmeticKC60k:         "<@&962002662616858785>",
				CosmeticKC70k:         "<@&1020821253155721226>",
				CosmeticKC80k:         "<@&1156365536746274886>",
				CosmeticKC90k:         "<@&1179145482061230231>",
				CosmeticKC100k:        "<@&1262896895202820168>",
				CosmeticOfThePraesul:  "<@&474307399851835414>",
				CosmeticGoldenPraesul: "<@&589268459502960642>",
			},
		},
		Channels: Channels{
			AchievementsAndLogs: "1058373790289109092",
			BotRoleLog:          "1058373508314431528",
			NAMock:              "954775172609630218",
			NATrial:             "954775172609630218",
			EUMock:              "765479967114919937",
			EUTrial:             "765479967114919937",
			MockResult:          "702083377066410002",
			TrialResult:         "702083377066410002",
		},
	},
	"1370324695324561439": {
		GuildID: "1370324695324561439",
		Roles: Roles{
			TrialHost:          "<@&1370324695882141753>",
			Organizer:          "<@&1370324696033263648>",
			Admin:              "<@&1370324696033263650>",
			Owner:              "<@&1370324696033263651>",
			Trialee:            "<@&1370324695345528878>",
			TrialeeTeacher:     "<@&1370324695676620814>",
			TrialTeam:          "<@&1370324695513174024>",
			TrialTeamProbation: "<@&1370324695425220691>",
			ApplicationTeam:    "<@&1370324695676620815>",
			SevenMan:           "<@&1370324695425220693>",
			Tags: map[TagKey]RoleRef{
				TagMagicMT:     "<@&1370324695383150684>",
				TagMagicBase:   "<@&1370324695383150685>",
				TagRangeMT:     "<@&1370324695362048089>",
				TagRangeBase:   "<@&1370324695383150683>",
				TagChinner:     "<@&1370324695383150682>",
				TagMrMT:        "<@&1370324695383150686>",
				TagMrHammer:    "<@&1370324695383150687>",
				TagMrBase:      "<@&1370324695383150688>",
				TagNecroBase:   "<@&1370324695383150691>",
				TagNecroHammer: "<@&1370324695383150690>",
				TagNecroMT:     "<@&1370324695383150689>",
			},
			Cosmetics: map[CosmeticKey]RoleRef{
				CosmeticKC10k:         "<@&1370324695425220695>",
				CosmeticKC20k:         "<@&1370324695425220696>",
				CosmeticKC30k:         "<@&1370324695425220697>",
				CosmeticKC40k:         "<@&1370324695458517072>",
				CosmeticKC50k:         "<@&1370324695458517073>",
				CosmeticKC60k:         "<@&1370324695458517074>",
				CosmeticKC70k:         "<@&1370324695458517075>",
				CosmeticKC80k:         "<@&1370324695458517076>",
				CosmeticKC90k:         "<@&1370324695458517077>",
				CosmeticKC100k:        "<@&1370324695458517078>",
				CosmeticOfThePraesul:  "<@&1370324695425220689>",
				CosmeticGoldenPraesul: "<@&1370324695425220690>",
			},
		},
		Channels: Channels{
			AchievementsAndLogs: "1370324698902171683",
			BotRoleLog:          "1370324703121510415",
			NAMock:              "1370324700382761004",
			NATrial:             "1370324700382761004",
			EUMock:              "1370324700382761003",
			EUTrial:             "1370324700382761003",
			MockResult:          "1370324700382761005",
			TrialResult:         "1370324700382761005",
		},
	},
}
