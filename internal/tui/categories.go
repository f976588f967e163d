package tui

type Category struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

var Categories = []Category{
	{ID: "validation", Name: "Validation", Description: "Full and strict validation modes", Icon: ""},
	{ID: "source", Name: "Source", Description: "Character encoding and line limits", Icon: ""},
	{ID: "cache", Name: "Cache", Description: "Caching behavior and TTL", Icon: ""},
	{ID: "concurrency", Name: "Concurrency", Description: "Number of parallel workers", Icon: ""},
	{ID: "output", Name: "Output", Description: "Report format and colors", Icon: ""},
	{ID: "logging", Name: "Logging", Description: "Log level and format", Icon: ""},
}

func GetCategoryByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

func GetCategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Name
	}
	return names
}
