package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Asi0Flammeus/course-ally/internal/check"
	"github.com/Asi0Flammeus/course-ally/internal/course"
	"github.com/Asi0Flammeus/course-ally/internal/coursemeta"
	"github.com/Asi0Flammeus/course-ally/internal/reorg"
	"github.com/Asi0Flammeus/course-ally/internal/repository"
	"github.com/Asi0Flammeus/course-ally/internal/structure"
	"github.com/Asi0Flammeus/course-ally/internal/tag"
)

// registry is shared by every command that resolves course names.
var registry = repository.DefaultRegistry()

// resolveCourseDir accepts either a path to a course directory or a course
// name inside the selected repository. Names are tried as given and
// lowercased, so the uppercased display names from `courses` work too.
func resolveCourseDir(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return arg, nil
	}
	dir, err := registry.CourseDir(CLI.Repo, arg)
	if err == nil {
		return dir, nil
	}
	if lower := strings.ToLower(arg); lower != arg {
		if dir, lerr := registry.CourseDir(CLI.Repo, lower); lerr == nil {
			return dir, nil
		}
	}
	return "", err
}

func runStructure(path string, asJSON bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read course file: %w", err)
	}
	st := structure.Parse(content)
	if asJSON {
		return printJSON(st)
	}

	for _, c := range st.OrphanChapters {
		fmt.Printf("## %s  [%s]  (no part)\n", c.Title, c.ID)
	}
	for _, p := range st.Parts {
		fmt.Printf("# %s  [%s]\n", p.Title, p.ID)
		for _, c := range p.Chapters {
			fmt.Printf("  ## %s  [%s]\n", c.Title, c.ID)
		}
	}
	return nil
}

func runChapters(courseArg, lang string, asJSON bool) error {
	dir, err := resolveCourseDir(courseArg)
	if err != nil {
		return err
	}
	chapters, err := course.Chapters(dir, lang)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(chapters)
	}
	for _, c := range chapters {
		fmt.Printf("%2d. %s  [%s]  %d words\n", c.Order, c.Title, c.ID, c.Words)
	}
	return nil
}

func runLanguages(courseArg string) error {
	dir, err := resolveCourseDir(courseArg)
	if err != nil {
		return err
	}
	langs, err := course.Languages(dir)
	if err != nil {
		return err
	}
	for _, lang := range langs {
		fmt.Println(lang)
	}
	return nil
}

func runCourses(asJSON bool) error {
	refs, err := registry.ListCourses()
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(refs)
	}
	for _, ref := range refs {
		fmt.Printf("%-13s %-30s %s\n", ref.RepoKey, ref.Name, ref.Dir)
	}
	return nil
}

func runShow(courseArg string, asJSON bool) error {
	dir, err := resolveCourseDir(courseArg)
	if err != nil {
		return err
	}
	c, err := repository.LoadCourseDir(dir)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(c)
	}

	m := c.Metadata
	fmt.Printf("topic: %s  subtopic: %s  type: %s  level: %s  hours: %d\n",
		m.Topic, m.Subtopic, m.Type, m.Level, m.Hours)
	fmt.Printf("languages: %s\n", strings.Join(c.Languages, ", "))
	for _, lang := range c.Languages {
		fields := c.Content[lang]
		fmt.Printf("\n[%s] %s\n", lang, fields.Name)
		if fields.Goal != "" {
			fmt.Printf("goal: %s\n", fields.Goal)
		}
		for _, obj := range fields.Objectives {
			fmt.Printf("- %s\n", obj)
		}
	}
	return nil
}

func runValidate(target, opsPath, lang string) error {
	batch, err := readBatch(opsPath)
	if err != nil {
		return err
	}
	path := target
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		path = filepath.Join(target, lang+".md")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read course file: %w", err)
	}

	problems := reorg.Validate(content, batch)
	if len(problems) == 0 {
		fmt.Printf("%d operations valid against %s\n", len(batch), filepath.Base(path))
		return nil
	}
	for _, p := range problems {
		fmt.Println(p)
	}
	return fmt.Errorf("operation batch invalid: %d problems", len(problems))
}

func runApply(courseArg, opsPath string, languages []string, dryRun bool) error {
	dir, err := resolveCourseDir(courseArg)
	if err != nil {
		return err
	}
	batch, err := readBatch(opsPath)
	if err != nil {
		return err
	}

	if dryRun {
		return dryRunApply(dir, batch, languages)
	}

	result, err := reorg.ApplyCourse(dir, batch, languages)
	if err != nil {
		return err
	}
	fmt.Printf("processed %d, failed %d\n", result.FilesProcessed, result.FilesFailed)
	for _, msg := range result.Errors {
		fmt.Println(msg)
	}
	if !result.Success {
		return fmt.Errorf("apply failed for %d files", result.FilesFailed)
	}
	return nil
}

// dryRunApply validates the batch against every selected language file and
// writes nothing.
func dryRunApply(dir string, batch reorg.Batch, languages []string) error {
	files, err := course.MarkdownFiles(dir)
	if err != nil {
		return err
	}

	invalid := 0
	for _, f := range files {
		if len(languages) > 0 && !slices.Contains(languages, f.Lang) {
			continue
		}
		content, err := os.ReadFile(f.Path)
		if err != nil {
			return fmt.Errorf("read %s: %w", filepath.Base(f.Path), err)
		}
		problems := reorg.Validate(content, batch)
		if len(problems) == 0 {
			fmt.Printf("%s: ok\n", filepath.Base(f.Path))
			continue
		}
		invalid++
		for _, p := range problems {
			fmt.Printf("%s: %s\n", filepath.Base(f.Path), p)
		}
	}
	if invalid > 0 {
		return fmt.Errorf("operation batch invalid for %d files", invalid)
	}
	return nil
}

func runCheck(target string, languages []string, reference string, asJSON bool) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("check target: %w", err)
	}

	var res *check.Result
	if info.IsDir() {
		res, err = check.RunCourse(target, check.Options{Reference: reference, Languages: languages})
	} else {
		res, err = check.RunFile(target)
	}
	if err != nil {
		return err
	}

	if asJSON {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		for _, issue := range res.Issues {
			loc := issue.File
			if issue.Line > 0 {
				loc = fmt.Sprintf("%s:%d", issue.File, issue.Line)
			}
			fmt.Printf("%-7s %s  %s  %s\n", issue.Severity, loc, issue.Rule, issue.Message)
			if issue.Fix != "" {
				fmt.Printf("        fix: %s\n", issue.Fix)
			}
		}
		fmt.Printf("%d files checked, %d errors, %d warnings\n",
			res.FilesChecked, res.ErrorCount(), res.WarningCount())
	}

	if res.HasErrors() {
		return fmt.Errorf("found %d errors", res.ErrorCount())
	}
	return nil
}

func runSetField(courseArg, field, value, valuesFile string) error {
	dir, err := resolveCourseDir(courseArg)
	if err != nil {
		return err
	}
	values, err := fieldValues(field, value, valuesFile)
	if err != nil {
		return err
	}

	report, err := coursemeta.UpdateCourseField(dir, field, values)
	if err != nil {
		return err
	}
	if len(report.Updated) > 0 {
		fmt.Printf("updated: %s\n", strings.Join(report.Updated, ", "))
	}
	if len(report.Skipped) > 0 {
		fmt.Printf("skipped: %s\n", strings.Join(report.Skipped, ", "))
	}
	for _, msg := range report.Errors {
		fmt.Println(msg)
	}
	if len(report.Errors) > 0 {
		return fmt.Errorf("update failed for %d files", len(report.Errors))
	}
	return nil
}

// fieldValues assembles the per-language values for one field update. A
// values file maps language codes to values; a plain --value applies to the
// reference language only, split on commas for the objectives list.
func fieldValues(field, value, valuesFile string) (map[string]any, error) {
	if valuesFile != "" {
		raw, err := os.ReadFile(valuesFile)
		if err != nil {
			return nil, fmt.Errorf("read values file: %w", err)
		}
		var values map[string]any
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, fmt.Errorf("decode values file: %w", err)
		}
		return values, nil
	}
	if value == "" {
		return nil, fmt.Errorf("either --value or --values-file is required")
	}

	var v any = value
	if field == coursemeta.FieldObjectives {
		parts := strings.Split(value, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			list = append(list, strings.TrimSpace(p))
		}
		v = list
	}
	return map[string]any{course.ReferenceLanguage: v}, nil
}

func runSetMeta(courseArg string) error {
	dir, err := resolveCourseDir(courseArg)
	if err != nil {
		return err
	}
	meta, err := course.LoadMetadata(dir)
	if err != nil {
		return err
	}

	flags := CLI.SetMeta
	if flags.Topic != nil {
		meta.Topic = *flags.Topic
	}
	if flags.Subtopic != nil {
		meta.Subtopic = *flags.Subtopic
	}
	if flags.Type != nil {
		meta.Type = *flags.Type
	}
	if flags.Level != nil {
		meta.Level = *flags.Level
	}
	if flags.Hours != nil {
		meta.Hours = *flags.Hours
	}
	if err := course.UpdateMetadata(dir, meta); err != nil {
		return err
	}

	if flags.Rename != "" {
		return repository.RenameDir(dir, flags.Rename)
	}
	return nil
}

func runNewTag(part bool) {
	id := tag.NewID()
	if part {
		fmt.Println(tag.Part(id))
		return
	}
	fmt.Println(tag.Chapter(id))
}

// readBatch loads an operation batch from a JSON file: an array of
// {action, source_id, target_id} objects.
func readBatch(path string) (reorg.Batch, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read operations file: %w", err)
	}
	var batch reorg.Batch
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, fmt.Errorf("decode operations file: %w", err)
	}
	return batch, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
