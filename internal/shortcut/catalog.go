package shortcut

// DefaultCatalog returns the built-in action catalog with its default
// bindings. The catalog is fixed by the application: actions are never
// added or removed at runtime, only their overrides change.
func DefaultCatalog() map[string]*Spec {
	specs := []*Spec{
		{
			ActionID:    "screenshot",
			Title:       "Screenshot",
			Description: "Capture screenshot to load it in your preferred AI",
			Category:    CategoryCore,
			Default:     PlatformBinding{Mac: "⌘ + S", Windows: "Ctrl + S"},
		},
		{
			ActionID:    "generate",
			Title:       "Generate Response",
			Description: "Generate AI response from your input",
			Category:    CategoryCore,
			Default:     PlatformBinding{Mac: "⌘ + ↵", Windows: "Ctrl + ↵"},
		},
		{
			ActionID:    "record",
			Title:       "Record Audio",
			Description: "Enable recording of microphone and system audio",
			Category:    CategoryMedia,
			Default:     PlatformBinding{Mac: "⌘ + R", Windows: "Ctrl + R"},
		},
		{
			ActionID:    "retry-prompt",
			Title:       "Retry Prompt",
			Description: "Use the shortcut to try again with your Retry Prompt",
			Category:    CategoryCore,
			Default:     PlatformBinding{Mac: "⌘ + T", Windows: "Ctrl + T"},
		},
		{
			ActionID:    "scroll-up",
			Title:       "Scroll Chat Up",
			Description: "Scroll up in the AI chat window",
			Category:    CategoryMovement,
			Default:     PlatformBinding{Mac: "⌘ + Shift + ↑", Windows: "Ctrl + Shift + ↑"},
		},
		{
			ActionID:    "scroll-down",
			Title:       "Scroll Chat Down",
			Description: "Scroll down in the AI chat window",
			Category:    CategoryMovement,
			Default:     PlatformBinding{Mac: "⌘ + Shift + ↓", Windows: "Ctrl + Shift + ↓"},
		},
		{
			ActionID:    "move-up",
			Title:       "Move Window Up",
			Description: "Move the overlay window upward",
			Category:    CategoryMovement,
			Default:     PlatformBinding{Mac: "⌘ + ↑", Windows: "Ctrl + ↑"},
		},
		{
			ActionID:    "move-down",
			Title:       "Move Window Down",
			Description: "Move the overlay window downward",
			Category:    CategoryMovement,
			Default:     PlatformBinding{Mac: "⌘ + ↓", Windows: "Ctrl + ↓"},
		},
		{
			ActionID:    "move-left",
			Title:       "Move Window Left",
			Description: "Move the overlay window to the left",
			Category:    CategoryMovement,
			Default:     PlatformBinding{Mac: "⌘ + ←", Windows: "Ctrl + ←"},
		},
		{
			ActionID:    "move-right",
			Title:       "Move Window Right",
			Description: "Move the overlay window to the right",
			Category:    CategoryMovement,
			Default:     PlatformBinding{Mac: "⌘ + →", Windows: "Ctrl + →"},
		},
		{
			ActionID:    "home",
			Title:       "Go Home",
			Description: "Return to the main dashboard page",
			Category:    CategoryNavigation,
			Default:     PlatformBinding{Mac: "⌘ + B", Windows: "Ctrl + B"},
		},
		{
			ActionID:    "hide-show",
			Title:       "Hide/Show Window",
			Description: "Toggle visibility of the overlay window",
			Category:    CategorySystem,
			Default:     PlatformBinding{Mac: "⌘ + H", Windows: "Ctrl + H"},
		},
		{
			ActionID:    "quit",
			Title:       "Emergency Exit",
			Description: "Instantly close the overlay (kill switch)",
			Category:    CategorySystem,
			Default:     PlatformBinding{Mac: "⌘ + Q", Windows: "Ctrl + W"},
		},
	}

	catalog := make(map[string]*Spec, len(specs))
	for _, s := range specs {
		catalog[s.ActionID] = s
	}
	return catalog
}
