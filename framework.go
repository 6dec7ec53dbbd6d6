package llmsdoc

// Framework describes the documented framework. It supplies the static part
// of the overview and the slug used in tool names.
type Framework struct {
	Name           string         `json:"name" yaml:"name"`
	Slug           string         `json:"slug" yaml:"slug"`
	Description    string         `json:"description" yaml:"description"`
	Maintainer     string         `json:"maintainer" yaml:"maintainer"`
	KeyFeatures    []string       `json:"keyFeatures" yaml:"key_features"`
	GettingStarted GettingStarted `json:"gettingStarted" yaml:"getting_started"`
}

// GettingStarted holds the first steps for a new project.
type GettingStarted struct {
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites"`
	Installation  string   `json:"installation" yaml:"installation"`
	CreateProject string   `json:"createProject" yaml:"create_project"`
	RunProject    string   `json:"runProject" yaml:"run_project"`
}

// DefaultFramework returns the metadata for Angular, the framework whose
// llms.txt files this server was first built around.
func DefaultFramework() Framework {
	return Framework{
		Name:        "Angular",
		Slug:        "angular",
		Description: "Angular is a web framework that empowers developers to build fast, reliable applications.",
		Maintainer:  "Google",
		KeyFeatures: []string{
			"Component-based architecture",
			"TypeScript support",
			"Dependency injection",
			"Reactive programming with RxJS",
			"Powerful CLI tools",
			"Comprehensive testing utilities",
		},
		GettingStarted: GettingStarted{
			Prerequisites: []string{"Node.js v20.11.1 or newer", "Text editor (VS Code recommended)", "Terminal"},
			Installation:  "npm install -g @angular/cli",
			CreateProject: "ng new my-app",
			RunProject:    "npm start",
		},
	}
}
