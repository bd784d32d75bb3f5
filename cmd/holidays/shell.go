package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"holidays.xdoubleu.com/apps/holidays"
)

const menu = `Holiday Menu
================
1. Add a Holiday
2. Remove a Holiday
3. Save Holiday List
4. View Holidays
5. Exit`

// errQuit is returned by prompts once the input is exhausted.
var errQuit = errors.New("quit")

type Handler interface {
	Handle(ctx context.Context, intent holidays.Intent) holidays.Result
}

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type Shell struct {
	handler Handler
	reader  LineReader
	out     io.Writer
}

func NewShell(handler Handler, reader LineReader, out io.Writer) *Shell {
	return &Shell{
		handler: handler,
		reader:  reader,
		out:     out,
	}
}

// Run shows the menu until the user exits or the input ends.
func (shell *Shell) Run(ctx context.Context) error {
	for {
		shell.println(menu)

		option, err := shell.prompt("Please choose an option: ")
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		var done bool
		switch option {
		case "1":
			err = shell.add(ctx)
		case "2":
			err = shell.remove(ctx)
		case "3":
			err = shell.save(ctx)
		case "4":
			err = shell.view(ctx)
		case "5":
			done, err = shell.exit(ctx)
		default:
			shell.println("Error:", fmt.Sprintf("%q is not a menu option.", option))
		}

		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (shell *Shell) add(ctx context.Context) error {
	shell.title("Add a Holiday")

	name, err := shell.promptRequired("Holiday: ")
	if err != nil {
		return err
	}

	for {
		var date string
		date, err = shell.prompt("Date: ")
		if err != nil {
			return err
		}

		result := shell.handler.Handle(ctx, holidays.AddHoliday{Name: name, Date: date})
		if errors.Is(result.Err, holidays.ErrValidation) {
			shell.println("Error:", "Invalid date. Please try again")
			continue
		}

		shell.report(result)
		return nil
	}
}

func (shell *Shell) remove(ctx context.Context) error {
	shell.title("Remove a Holiday")

	name, err := shell.promptRequired("Holiday Name: ")
	if err != nil {
		return err
	}

	for {
		var date string
		date, err = shell.prompt("Date: ")
		if err != nil {
			return err
		}

		result := shell.handler.Handle(ctx, holidays.RemoveHoliday{Name: name, Date: date})
		switch {
		case errors.Is(result.Err, holidays.ErrValidation):
			shell.println("Error:", "Invalid date. Please try again")
			continue
		case errors.Is(result.Err, holidays.ErrNotFound):
			shell.println("Error:", fmt.Sprintf("%s not found.", name))
		default:
			shell.report(result)
		}

		return nil
	}
}

func (shell *Shell) save(ctx context.Context) error {
	shell.title("Saving Holiday List")

	confirmed, err := shell.confirm("Are you sure you want to save your changes? [y/n]: ")
	if err != nil {
		return err
	}

	if !confirmed {
		shell.println("Canceled:", "Holiday list file save canceled.")
		return nil
	}

	shell.report(shell.handler.Handle(ctx, holidays.Save{}))
	return nil
}

func (shell *Shell) view(ctx context.Context) error {
	shell.title("View Holidays")

	var year int
	for {
		value, err := shell.prompt("Which year?: ")
		if err != nil {
			return err
		}

		year, err = strconv.Atoi(value)
		if err == nil && year > 0 {
			break
		}

		shell.println("Error:", "Invalid year. Please try again")
	}

	week := 0
	for {
		value, err := shell.prompt("Which week? #[1-53, Leave blank for the current week]: ")
		if err != nil {
			return err
		}

		if value == "" {
			week = 0
			break
		}

		week, err = strconv.Atoi(value)
		//nolint:mnd //ISO weeks
		if err == nil && week >= 1 && week <= 53 {
			break
		}

		shell.println("Error:", "Invalid week. Please try again")
	}

	weather := false
	if week == 0 {
		var err error
		weather, err = shell.confirm("Would you like to see this week's weather? [y/n]: ")
		if err != nil {
			return err
		}
	}

	result := shell.handler.Handle(ctx, holidays.ViewWeek{
		Year:    year,
		Week:    week,
		Weather: weather,
	})

	shell.println(result.Message)
	for _, holiday := range result.Holidays {
		shell.println(holiday.String())
	}
	if len(result.Holidays) == 0 {
		shell.println("No holidays this week.")
	}

	if len(result.Forecast) > 0 {
		shell.println("")
		shell.println("Weather")
		for _, day := range result.Forecast {
			shell.println(day.String())
		}
	}

	if result.Err != nil {
		shell.println("Error:", result.Err.Error())
	}

	return nil
}

func (shell *Shell) exit(ctx context.Context) (bool, error) {
	shell.title("Exit")

	question := "Are you sure you want to exit? [y/n] "

	result := shell.handler.Handle(ctx, holidays.Exit{})
	if errors.Is(result.Err, holidays.ErrUnsavedChanges) {
		shell.println("Are you sure you want to exit?", "Your changes will be lost.")
		question = "[y/n] "
	}

	confirmed, err := shell.confirm(question)
	if err != nil || !confirmed {
		return false, err
	}

	result = shell.handler.Handle(ctx, holidays.Exit{Confirmed: true})
	shell.println(result.Message)

	return result.Done, nil
}

func (shell *Shell) report(result holidays.Result) {
	if result.Err != nil {
		shell.println("Error:", result.Err.Error())
		return
	}

	shell.println("Success:", result.Message)
}

func (shell *Shell) title(title string) {
	shell.println(title, strings.Repeat("=", len(title)))
}

func (shell *Shell) println(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(shell.out, line)
	}
}

func (shell *Shell) prompt(prompt string) (string, error) {
	for {
		shell.reader.SetPrompt(prompt)

		line, err := shell.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return "", errQuit
		}
		if err != nil {
			return "", err
		}

		return strings.TrimSpace(line), nil
	}
}

func (shell *Shell) promptRequired(prompt string) (string, error) {
	for {
		value, err := shell.prompt(prompt)
		if err != nil || value != "" {
			return value, err
		}

		shell.println("Error:", "A value is required. Please try again")
	}
}

func (shell *Shell) confirm(prompt string) (bool, error) {
	for {
		value, err := shell.prompt(prompt)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(value) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
