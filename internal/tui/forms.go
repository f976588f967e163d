package tui

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/esomanifest-go/internal/config"
	"github.com/quantmind-br/esomanifest-go/internal/theme"
)

func CreateValidationForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("full").
				Title("Full Validation").
				Description("Check length limits, required directives and the minimum APIVersion").
				Value(&values.FullValidation),

			huh.NewConfirm().
				Key("strict").
				Title("Strict Mode").
				Description("Treat warnings such as unmapped directives as failures").
				Value(&values.Strict),
		),
	).WithTheme(theme.Form())
}

func CreateSourceForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("encoding").
				Title("Encoding").
				Description("Empty or utf-8 reads files as is, auto guesses, or a label like windows-1252").
				Value(&values.Encoding).
				Placeholder("utf-8").
				Validate(ValidateEncoding),

			huh.NewInput().
				Key("max_line_bytes").
				Title("Max Line Bytes").
				Description("Longest line read before the file is reported as unreadable").
				Value(&values.MaxLineBytes).
				Placeholder(strconv.Itoa(config.DefaultMaxLineBytes)).
				Validate(ValidateIntRange(config.MinLineBytes, 64<<20)),
		),
	).WithTheme(theme.Form())
}

func CreateCacheForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("enabled").
				Title("Enable Cache").
				Description("Reuse parse results for unchanged manifests").
				Value(&values.CacheEnabled),

			huh.NewInput().
				Key("ttl").
				Title("Cache TTL").
				Description("How long to keep cached results (e.g., 24h, 168h)").
				Value(&values.CacheTTL).
				Placeholder("168h").
				Validate(ValidateDuration),

			huh.NewInput().
				Key("directory").
				Title("Cache Directory").
				Description("Directory for cache storage").
				Value(&values.CacheDirectory).
				Placeholder("~/.esomanifest/cache"),
		),
	).WithTheme(theme.Form())
}

func CreateConcurrencyForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("workers").
				Title("Workers").
				Description("Manifests validated in parallel (1-64)").
				Value(&values.Workers).
				Placeholder(strconv.Itoa(config.DefaultWorkers)).
				Validate(ValidateIntRange(1, config.MaxWorkers)),
		),
	).WithTheme(theme.Form())
}

func CreateOutputForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("format").
				Title("Report Format").
				Description("How parse results are printed").
				Options(
					huh.NewOption("Text (human-readable)", config.FormatText),
					huh.NewOption("JSON", config.FormatJSON),
					huh.NewOption("YAML", config.FormatYAML),
				).
				Value(&values.OutputFormat),

			huh.NewConfirm().
				Key("color").
				Title("Colors").
				Description("Style text reports for the terminal").
				Value(&values.OutputColor),
		),
	).WithTheme(theme.Form())
}

func CreateLoggingForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("level").
				Title("Log Level").
				Description("Minimum log level to display").
				Options(
					huh.NewOption("Trace", "trace"),
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Value(&values.LogLevel),

			huh.NewSelect[string]().
				Key("format").
				Title("Log Format").
				Description("Output format for logs").
				Options(
					huh.NewOption("Pretty (human-readable)", "pretty"),
					huh.NewOption("JSON (structured)", "json"),
					huh.NewOption("Text (plain)", "text"),
				).
				Value(&values.LogFormat),
		),
	).WithTheme(theme.Form())
}

func GetFormForCategory(category string, values *ConfigValues) *huh.Form {
	switch category {
	case "validation":
		return CreateValidationForm(values)
	case "source":
		return CreateSourceForm(values)
	case "cache":
		return CreateCacheForm(values)
	case "concurrency":
		return CreateConcurrencyForm(values)
	case "output":
		return CreateOutputForm(values)
	case "logging":
		return CreateLoggingForm(values)
	default:
		return nil
	}
}
