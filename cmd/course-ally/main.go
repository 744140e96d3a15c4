package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

var CLI struct {
	Repo    string `short:"r" help:"Repository key for course name lookups" default:"BEC_REPO"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Structure struct {
		File string `arg:"" help:"Course markdown file"`
		JSON bool   `help:"Print the outline as JSON"`
	} `cmd:"" help:"Print the part/chapter outline of one course file"`

	Chapters struct {
		Course   string `arg:"" help:"Course directory or course name"`
		Language string `short:"l" default:"en" help:"Language file to list"`
		JSON     bool   `help:"Print the chapter list as JSON"`
	} `cmd:"" help:"List the chapters of one course language"`

	Languages struct {
		Course string `arg:"" help:"Course directory or course name"`
	} `cmd:"" help:"List the languages of a course"`

	Courses struct {
		JSON bool `help:"Print the course list as JSON"`
	} `cmd:"" help:"List the courses of every reachable repository"`

	Show struct {
		Course string `arg:"" help:"Course directory or course name"`
		JSON   bool   `help:"Print the course as JSON"`
	} `cmd:"" help:"Show course metadata and per-language fields"`

	Validate struct {
		Target   string `arg:"" help:"Course markdown file or course directory"`
		Ops      string `required:"" help:"JSON file holding the operation batch"`
		Language string `short:"l" default:"en" help:"Language file validated when the target is a directory"`
	} `cmd:"" help:"Validate an operation batch without writing"`

	Apply struct {
		Course    string   `arg:"" help:"Course directory or course name"`
		Ops       string   `required:"" help:"JSON file holding the operation batch"`
		Languages []string `short:"l" help:"Limit the apply to these languages"`
		DryRun    bool     `help:"Validate every language file and write nothing"`
	} `cmd:"" help:"Apply an operation batch across a course's language files"`

	Check struct {
		Target    string   `arg:"" help:"Course markdown file or course directory"`
		Languages []string `short:"l" help:"Limit the check to these languages"`
		Reference string   `help:"Reference language for the drift check"`
		JSON      bool     `help:"Print issues as JSON"`
	} `cmd:"" help:"Check course files for structural problems"`

	SetField struct {
		Course     string `arg:"" help:"Course directory or course name"`
		Field      string `required:"" enum:"name,goal,objectives,description" help:"Field to update"`
		Value      string `help:"New value for the reference language"`
		ValuesFile string `help:"JSON file mapping language codes to values"`
	} `cmd:"" name:"set-field" help:"Update one editable field across language files"`

	SetMeta struct {
		Course   string  `arg:"" help:"Course directory or course name"`
		Topic    *string `help:"New topic"`
		Subtopic *string `help:"New subtopic"`
		Type     *string `help:"New course type"`
		Level    *string `help:"New difficulty level"`
		Hours    *int    `help:"New duration in hours"`
		Rename   string  `help:"New directory name for the course"`
	} `cmd:"" name:"set-meta" help:"Update course.yml fields"`

	NewTag struct {
		Part bool `help:"Generate a part tag instead of a chapter tag"`
	} `cmd:"" name:"new-tag" help:"Print a marker tag with a fresh ID"`
}

func main() {
	// Missing .env is the normal case outside a checkout.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "structure <file>":
		if err := runStructure(CLI.Structure.File, CLI.Structure.JSON); err != nil {
			slog.Error("Structure failed", "error", err)
			os.Exit(1)
		}
	case "chapters <course>":
		if err := runChapters(CLI.Chapters.Course, CLI.Chapters.Language, CLI.Chapters.JSON); err != nil {
			slog.Error("Chapter listing failed", "error", err)
			os.Exit(1)
		}
	case "languages <course>":
		if err := runLanguages(CLI.Languages.Course); err != nil {
			slog.Error("Language listing failed", "error", err)
			os.Exit(1)
		}
	case "courses":
		if err := runCourses(CLI.Courses.JSON); err != nil {
			slog.Error("Course listing failed", "error", err)
			os.Exit(1)
		}
	case "show <course>":
		if err := runShow(CLI.Show.Course, CLI.Show.JSON); err != nil {
			slog.Error("Show failed", "error", err)
			os.Exit(1)
		}
	case "validate <target>":
		if err := runValidate(CLI.Validate.Target, CLI.Validate.Ops, CLI.Validate.Language); err != nil {
			slog.Error("Validation failed", "error", err)
			os.Exit(1)
		}
	case "apply <course>":
		if err := runApply(CLI.Apply.Course, CLI.Apply.Ops, CLI.Apply.Languages, CLI.Apply.DryRun); err != nil {
			slog.Error("Apply failed", "error", err)
			os.Exit(1)
		}
	case "check <target>":
		if err := runCheck(CLI.Check.Target, CLI.Check.Languages, CLI.Check.Reference, CLI.Check.JSON); err != nil {
			slog.Error("Check failed", "error", err)
			os.Exit(1)
		}
	case "set-field <course>":
		if err := runSetField(CLI.SetField.Course, CLI.SetField.Field, CLI.SetField.Value, CLI.SetField.ValuesFile); err != nil {
			slog.Error("Field update failed", "error", err)
			os.Exit(1)
		}
	case "set-meta <course>":
		if err := runSetMeta(CLI.SetMeta.Course); err != nil {
			slog.Error("Metadata update failed", "error", err)
			os.Exit(1)
		}
	case "new-tag":
		runNewTag(CLI.NewTag.Part)
	}
}
