package telegram

// UI texts in English
const (
	startFmt = "👋 I deliver your Budgetzz alerts.\n\n" +
		"Your chat id is %d\n\n" +
		"Paste it into Settings → Notifications → Push and enable push alerts."
	helpText = "Budget thresholds, upcoming bills and goal milestones are sent here once push alerts are enabled.\n\n" +
		"/start shows your chat id\n" +
		"/help shows this message"
	pushFmt = "🔔 %s\n\n%s"
)
