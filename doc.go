// Package notes2script turns loosely structured Markdown notes into a
// narrated video transcript sized to a target duration.
//
// # Quick Start
//
// Create a generator and generate a transcript:
//
//	gen, err := notes2script.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate(ctx, notes2script.Input{
//	    Markdown: "# Widgets\n## Uses\nWidgets are used everywhere.",
//	    Minutes:  6,
//	    Preset:   notes2script.PresetNeutral,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("widgets_transcript.md", result.Transcript, 0644)
//
// Generation succeeds for any text. Quality concerns such as an unknown
// preset, notes without headings or a duration outside the recommended
// 3-15 minute band are reported in Result.Warnings.
//
// # Pipeline
//
//  1. Normalization: line endings, whitespace, bullets and table-of-contents
//     blocks are canonicalized. Fenced code is left untouched.
//  2. Structure: the first level-1 heading is the title; every other heading
//     starts a section.
//  3. Budget: the target word count (minutes x words per minute) minus a
//     fixed overhead for hook, intro, recap and call to action is split
//     across the sections.
//  4. Style: a preset (neutral, xiaohongshu, professional) selects templates,
//     contractions and emoji for every narrated segment.
//  5. Assembly: hook, intro, up to five sections, recap, call to action and
//     production notes with a coverage check of every section.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := notes2script.NewGenerator(
//	    notes2script.WithWordsPerMinute(170),
//	    notes2script.WithAllocation(notes2script.AllocationProportional),
//	    notes2script.WithAssetPath("/path/to/custom/assets"),
//	)
//
// # Custom Assets
//
// Preset records and the preview stylesheet can be overridden per name:
//
//	assets/
//	├── presets/
//	│   └── professional.yaml
//	└── styles/
//	    └── preview.css
//
// The preset set itself is closed: a custom directory can retune neutral,
// xiaohongshu or professional but cannot add a new preset.
package notes2script
