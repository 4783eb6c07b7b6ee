package news

import "time"

// SeedArticles returns the startup feed, timestamped relative to now.
func SeedArticles(now time.Time) []Article {
	ago := func(h int) time.Time { return now.Add(-time.Duration(h) * time.Hour) }
	return []Article{
		{
			ID:        "c1",
			Title:     "The Race for 6G: India’s Strategic Roadmap",
			Summary:   "While 5G is still rolling out, India is already laying the groundwork for 6G patents and infrastructure by 2030.",
			Content:   "The Department of Telecommunications has released its \"Bharat 6G Vision\" document. The focus is on terahertz communication, AI-native networks, and non-terrestrial network integration. Major players like Jio and Airtel are beginning preliminary R&D labs in Bengaluru.",
			Category:  Gadgets,
			Source:    "Telecom India",
			Timestamp: ago(2),
			ImageURL:  TechImages[0],
			Score:     9,
		},
		{
			ID:        "c2",
			Title:     "OpenAI Strawberry: The Next Leap in Reasoning",
			Summary:   "Rumors suggest OpenAI’s new model \"Strawberry\" drastically improves mathematical reasoning and coding capabilities.",
			Content:   "Project Strawberry (formerly Q*) is reportedly capable of solving complex math problems that current LLMs struggle with. This marks a shift from pattern matching to actual logical deduction. Developers anticipate a late 2025 API release.",
			Category:  AI,
			Source:    "The Information",
			Timestamp: ago(4),
			ImageURL:  TechImages[4],
			Score:     10,
		},
		{
			ID:        "c3",
			Title:     "Solid State Batteries: Toyota Claims Breakthrough",
			Summary:   "745 miles of range and 10-minute charging? The holy grail of EV tech might finally be mass-producible.",
			Content:   "Toyota announces a technological breakthrough that resolves durability issues in solid-state batteries. They plan to commercialize this technology by 2027-2028. This could revolutionize the EV market in India, where charging infrastructure is still growing.",
			Category:  Gadgets,
			Source:    "Reuters",
			Timestamp: ago(5),
			ImageURL:  TechImages[3],
			Score:     8,
		},
		{
			ID:        "c4",
			Title:     "Android 16: Deep Windows Integration",
			Summary:   "Google is working to make Android phones seamless extensions of Windows PCs, challenging the Apple Ecosystem.",
			Content:   "Code in the latest Android preview suggests a \"Cross-Device Services\" update that allows streaming Android apps directly to Windows 11 taskbars without third-party tools like Phone Link. A game changer for productivity.",
			Category:  OS,
			Source:    "Android Authority",
			Timestamp: ago(8),
			ImageURL:  TechImages[19],
			Score:     7,
		},
		{
			ID:        "c5",
			Title:     "OnePlus 13 Renders Leaked: A New Design Era",
			Summary:   "OnePlus is ditching the circular camera island for a bold new aesthetic in its upcoming flagship.",
			Content:   "Leaked CAD renders show a vertical camera alignment reminiscent of the OnePlus X, but with massive sensors. The device is confirmed to sport the Snapdragon 8 Elite and a 6000mAh glacier battery.",
			Category:  Gadgets,
			Source:    "OnLeaks",
			Timestamp: ago(10),
			ImageURL:  TechImages[1],
			Score:     9,
		},
		{
			ID:        "c6",
			Title:     "Meta Ray-Ban Smart Glasses: Multimodal AI Update",
			Summary:   "Your glasses can now identify landmarks and translate signs in real-time with the new \"Look and Ask\" update.",
			Content:   "Meta has pushed a firmware update to Ray-Ban smart glasses unlocking advanced visual look-up features. Users in India can now ask the AI to identify monuments or translate Hindi text to English instantly.",
			Category:  Gadgets,
			Source:    "The Verge",
			Timestamp: ago(12),
			ImageURL:  TechImages[28],
			Score:     8,
		},
		{
			ID:        "c7",
			Title:     "Quantum Computing: Google vs. IBM",
			Summary:   "Google claims \"Quantum Supremacy\" again with a new 70-qubit processor, outpacing supercomputers.",
			Content:   "Google Sycamore processor has performed a calculation in seconds that would take Frontier, the world’s fastest supercomputer, 47 years. Applications include drug discovery and new material science.",
			Category:  Other,
			Source:    "Nature Journal",
			Timestamp: ago(14),
			ImageURL:  TechImages[2],
			Score:     10,
		},
		{
			ID:        "c8",
			Title:     "Nothing OS 3.0: AI-First Interface",
			Summary:   "Carl Pei teases a radical redesign where apps take a backseat to AI-driven intent prediction.",
			Content:   "Nothing OS 3.0 aims to reduce screen time by surfacing information dynamically. The \"Dot Matrix\" design language remains, but with fluid animations and generative wallpapers.",
			Category:  OS,
			Source:    "Nothing Blog",
			Timestamp: ago(16),
			ImageURL:  TechImages[23],
			Score:     7,
		},
		{
			ID:        "c9",
			Title:     "NVIDIA Rubin Architecture revealed",
			Summary:   "Before Blackwell even ships, NVIDIA teases \"Rubin\", the 2026 GPU architecture for next-gen AI.",
			Content:   "Jensen Huang revealed the roadmap for Rubin GPUs, featuring HBM4 memory and a new interconnect switch. This ensures NVIDIA maintains its stranglehold on the AI training market.",
			Category:  AI,
			Source:    "Computex",
			Timestamp: ago(18),
			ImageURL:  TechImages[8],
			Score:     9,
		},
		{
			ID:        "c10",
			Title:     "Samsung Galaxy Ring India Pricing",
			Summary:   "The smart ring arrives in India to compete with Ultrahuman. Expected price tag: ₹35,999.",
			Content:   "Samsung brings its health-focused wearable to India. It features sleep apnea detection, menstrual cycle tracking via skin temperature, and a 7-day battery life. It works best with the Samsung Health ecosystem.",
			Category:  Gadgets,
			Source:    "MySmartPrice",
			Timestamp: ago(20),
			ImageURL:  TechImages[14],
			Score:     6,
		},
		{
			ID:        "c11",
			Title:     "iOS 19: \"Apple Intelligence\" Expansion",
			Summary:   "Siri is getting a \"Brain\" upgrade. Reports suggest iOS 19 will allow Siri to control third-party apps deeply.",
			Content:   "The next iteration of iOS will focus on \"App Intents\", allowing Siri to perform multi-step actions like \"Crop this photo and email it to John\". This relies on on-device local LLMs.",
			Category:  OS,
			Source:    "Bloomberg",
			Timestamp: ago(22),
			ImageURL:  TechImages[20],
			Score:     8,
		},
		{
			ID:        "c12",
			Title:     "Xiaomi SU7 Ultra: EV Speed Record",
			Summary:   "Xiaomi’s electric car breaks Nürburgring records, proving they are a serious contender in the auto space.",
			Content:   "The SU7 Ultra prototype clocked an impressive lap time, beating Porsche. While not yet available in India, Xiaomi hinted at expanding its EV lineup to Asian markets by 2026.",
			Category:  Other,
			Source:    "TopGear",
			Timestamp: ago(24),
			ImageURL:  TechImages[27],
			Score:     9,
		},
		{
			ID:        "c13",
			Title:     "Neuralink: Second Patient Success",
			Summary:   "Elon Musk confirms the second human implant is functioning well, allowing the patient to play CS:GO with their mind.",
			Content:   "The brain-computer interface is showing stable electrode connections. Neuralink plans to scale to 10 patients this year, focusing on restoring autonomy to those with spinal cord injuries.",
			Category:  Other,
			Source:    "TechCrunch",
			Timestamp: ago(26),
			ImageURL:  TechImages[15],
			Score:     10,
		},
		{
			ID:        "c14",
			Title:     "Windows 12: Cloud OS Rumors",
			Summary:   "Microsoft might offer a \"thin client\" version of Windows 12 that runs entirely from Azure.",
			Content:   "Ideally suited for enterprise and education, this version of Windows would require constant internet but demand zero local hardware power, running on cheap ARM chips.",
			Category:  OS,
			Source:    "Windows Central",
			Timestamp: ago(28),
			ImageURL:  TechImages[21],
			Score:     6,
		},
		{
			ID:        "c15",
			Title:     "Realme GT 7 Pro: 300W Charging?",
			Summary:   "Realme demonstrates charging technology that fills a phone battery in under 5 minutes.",
			Content:   "The technology, dubbed \"SuperSonic Charge\", was demoed at HQ. While not yet in the GT 7 Pro, it hints at what’s coming for the GT 8 series. The current GT 7 Pro settles for a \"modest\" 120W.",
			Category:  Gadgets,
			Source:    "Weibo",
			Timestamp: ago(30),
			ImageURL:  TechImages[22],
			Score:     8,
		},
	}
}

// SeedLaunches returns the static launch calendar.
func SeedLaunches() []LaunchEvent {
	return []LaunchEvent{
		{
			ID:          "l_op_open2",
			ProductName: "OnePlus Open 2",
			Company:     "OnePlus",
			Date:        MustDay("2025-06-15"),
			Description: "Refined hinge, Snapdragon 8 Gen 4, lighter build.",
			Type:        ParseLaunchType("Hardware"),
		},
		{
			ID:          "l_win12",
			ProductName: "Windows 12",
			Company:     "Microsoft",
			Date:        MustDay("2025-07-01"),
			Description: "Major OS overhaul with deep AI core integration.",
			Type:        ParseLaunchType("OS"),
		},
		{
			ID:          "l_nothing4",
			ProductName: "Nothing Phone (4)",
			Company:     "Nothing",
			Date:        MustDay("2025-07-15"),
			Description: "Next-gen glyph interface with transparent ceramic back.",
			Type:        ParseLaunchType("Hardware"),
		},
		{
			ID:          "l_fold7",
			ProductName: "Samsung Galaxy Z Fold 7",
			Company:     "Samsung",
			Date:        MustDay("2025-08-10"),
			Description: "Wider cover screen and dust resistance rating.",
			Type:        ParseLaunchType("Hardware"),
		},
		{
			ID:          "l_iphone17",
			ProductName: "iPhone 17 Air",
			Company:     "Apple",
			Date:        MustDay("2025-09-12"),
			Description: "Ultra-thin chassis replacing the Plus model.",
			Type:        ParseLaunchType("Hardware"),
		},
		{
			ID:          "l_pixel10",
			ProductName: "Pixel 10 Pro",
			Company:     "Google",
			Date:        MustDay("2025-10-04"),
			Description: "First fully custom TSMC Tensor G5 chip.",
			Type:        ParseLaunchType("Hardware"),
		},
		{
			ID:          "l_meta_quest4",
			ProductName: "Meta Quest 4",
			Company:     "Meta",
			Date:        MustDay("2025-10-15"),
			Description: "Lighter headset with eye-tracking standard.",
			Type:        ParseLaunchType("Hardware"),
		},
		{
			ID:          "l_gpt5",
			ProductName: "GPT-5 \"Orion\"",
			Company:     "OpenAI",
			Date:        MustDay("2025-11-01"),
			Description: "The next frontier in autonomous agents.",
			Type:        ParseLaunchType("Software"),
		},
		{
			ID:          "l_iqoo15",
			ProductName: "iQOO 15 Legend",
			Company:     "iQOO",
			Date:        MustDay("2025-12-05"),
			Description: "BMW M Motorsport edition with 300W charging.",
			Type:        ParseLaunchType("Hardware"),
		},
		{
			ID:          "l_switch2",
			ProductName: "Nintendo Switch 2",
			Company:     "Nintendo",
			Date:        MustDay("2026-01-20"),
			Description: "4K DLSS output with backward compatibility.",
			Type:        ParseLaunchType("Hardware"),
		},
		{
			ID:          "l_s26",
			ProductName: "Samsung Galaxy S26 Ultra",
			Company:     "Samsung",
			Date:        MustDay("2026-02-10"),
			Description: "First Galaxy with 2nm architecture chip.",
			Type:        ParseLaunchType("Hardware"),
		},
		{
			ID:          "l_apple_ring",
			ProductName: "Apple Ring",
			Company:     "Apple",
			Date:        MustDay("2026-03-15"),
			Description: "Health tracking wearable integrated with Vision Pro.",
			Type:        ParseLaunchType("Hardware"),
		},
		{
			ID:          "l_gta6",
			ProductName: "GTA VI Online",
			Company:     "Rockstar",
			Date:        MustDay("2026-04-01"),
			Description: "The biggest entertainment launch in history.",
			Type:        ParseLaunchType("Software"),
		},
		{
			ID:          "l_vision_air",
			ProductName: "Apple Vision Air",
			Company:     "Apple",
			Date:        MustDay("2026-06-05"),
			Description: "Affordable mixed reality glasses for consumers.",
			Type:        ParseLaunchType("Hardware"),
		},
		{
			ID:          "l_6g",
			ProductName: "Jio 6G Trial",
			Company:     "Jio",
			Date:        MustDay("2026-08-15"),
			Description: "First public demonstration of 6G in India.",
			Type:        ParseLaunchType("Service"),
		},
	}
}
