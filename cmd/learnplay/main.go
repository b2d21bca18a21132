package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"learningassistant"
)

func main() {
	cfg := learningassistant.FromEnv()

	var (
		youtubeURL     = flag.String("url", "", "YouTube video URL to process")
		transcriptFile = flag.String("transcript-file", "", "File holding a transcript to process (- for stdin)")
		title          = flag.String("title", "", "Video title for transcript mode (optional)")
		apiURL         = flag.String("api-url", cfg.APIURL, "Learning backend API root")
		verbose        = flag.Bool("verbose", cfg.Verbose, "Enable verbose debugging output")
	)

	flag.Parse()

	logger, err := learningassistant.NewLogger(cfg.LogMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	learningassistant.SetLogger(logger)
	learningassistant.SetVerbose(*verbose)

	page := learningassistant.NewPage()
	switch {
	case *youtubeURL != "":
		page.SetMode(learningassistant.ModeURL)
		page.URLDraft = *youtubeURL
	case *transcriptFile != "":
		text, err := readTranscript(*transcriptFile)
		if err != nil {
			logger.Fatalw("failed to read transcript", "file", *transcriptFile, "error", err)
		}
		page.TranscriptDraft = text
		page.TitleDraft = *title
	default:
		fmt.Fprintln(os.Stderr, "One of -url or -transcript-file is required.")
		flag.Usage()
		os.Exit(2)
	}

	fmt.Println("⏳ Generating content with AI... This may take 15-30 seconds")
	client := learningassistant.NewClient(*apiURL, nil)
	if err := page.Run(context.Background(), client); err != nil {
		fmt.Printf("❌ %s\n", page.Error)
		os.Exit(1)
	}

	in := bufio.NewScanner(os.Stdin)
	if *transcriptFile == "-" {
		// stdin already consumed by the transcript
		printResult(os.Stdout, page)
		return
	}
	playQuiz(in, os.Stdout, page)
}

func readTranscript(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// printResult writes the non-interactive sections of the result
func printResult(out io.Writer, page *learningassistant.Page) {
	view := learningassistant.RenderResult(page.Result, page.Quiz)
	if view == nil {
		fmt.Fprintln(out, "No content returned.")
		return
	}
	if view.Title != "" {
		fmt.Fprintf(out, "📹 %s\n\n", view.Title)
	}
	fmt.Fprintln(out, "📝 Summary")
	fmt.Fprintf(out, "%s\n\n", view.Summary)
	fmt.Fprintln(out, "🎯 Key Learning Points")
	for _, kp := range view.KeyPoints {
		fmt.Fprintf(out, "  • %s\n", kp)
	}
	fmt.Fprintf(out, "\n❓ Quiz Questions (%d)\n", view.QuestionCount)
}

// playQuiz walks the quiz one question at a time. A letter selects an
// option, "s" shows or hides the answer, "n" moves on and "q" stops.
func playQuiz(in *bufio.Scanner, out io.Writer, page *learningassistant.Page) {
	printResult(out, page)
	if page.Result == nil {
		return
	}

	total := len(page.Result.QuizQuestions)
	for i := 0; i < total; i++ {
		for {
			printQuestion(out, page, i)
			fmt.Fprint(out, "Choose an option letter, (s)how/hide answer, (n)ext, (q)uit: ")
			if !in.Scan() {
				printScore(out, page)
				return
			}
			cmd := strings.ToUpper(strings.TrimSpace(in.Text()))

			if cmd == "N" || cmd == "" {
				break
			}
			if cmd == "Q" {
				printScore(out, page)
				return
			}
			if cmd == "S" {
				page.ToggleAnswer(i)
				continue
			}
			if option, ok := optionByLetter(page.Result.QuizQuestions[i], cmd); ok {
				page.SelectOption(i, option)
				continue
			}
			fmt.Fprintln(out, "Please enter an option letter, s, n or q")
		}
		fmt.Fprintln(out, strings.Repeat("─", 50))
	}
	printScore(out, page)
}

func printQuestion(out io.Writer, page *learningassistant.Page, index int) {
	view := learningassistant.RenderResult(page.Result, page.Quiz)
	q := view.Questions[index]

	fmt.Fprintf(out, "\nQuestion %d/%d:\n%s\n\n", q.Number, view.QuestionCount, q.Prompt)
	for _, opt := range q.Options {
		fmt.Fprintf(out, "%s) %s%s\n", opt.Letter, opt.Text, optionMarker(opt))
	}
	if q.Revealed {
		fmt.Fprintf(out, "✅ Correct Answer: %s\n", q.CorrectAnswer)
	}
	fmt.Fprintln(out)
}

// optionMarker renders the option classes for a terminal
func optionMarker(opt learningassistant.OptionView) string {
	var marks []string
	if opt.Has(learningassistant.ClassSelected) {
		marks = append(marks, "👉")
	}
	if opt.Has(learningassistant.ClassCorrect) {
		marks = append(marks, "✅")
	}
	if opt.Has(learningassistant.ClassIncorrect) {
		marks = append(marks, "❌")
	}
	if len(marks) == 0 {
		return ""
	}
	return "  " + strings.Join(marks, " ")
}

func optionByLetter(q learningassistant.QuizQuestion, letter string) (string, bool) {
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return "", false
	}
	i := int(letter[0] - 'A')
	if i >= len(q.Options) {
		return "", false
	}
	return q.Options[i], true
}

func printScore(out io.Writer, page *learningassistant.Page) {
	if page.Result == nil || len(page.Result.QuizQuestions) == 0 {
		return
	}
	correct, answered := 0, 0
	for i, q := range page.Result.QuizQuestions {
		opt, ok := page.Quiz.SelectedOption(i)
		if !ok {
			continue
		}
		answered++
		if opt == q.CorrectAnswer {
			correct++
		}
	}
	total := len(page.Result.QuizQuestions)
	fmt.Fprintf(out, "\n📊 %d/%d correct (%d answered)\n", correct, total, answered)
}
