package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Palette цвета маркеров консоли
type Palette struct {
	Info   text.Colors
	Error  text.Colors
	Prompt text.Colors
	Title  text.Colors
}

func DefaultPalette() Palette {
	return Palette{
		Info:   text.Colors{text.FgHiGreen},
		Error:  text.Colors{text.FgHiRed},
		Prompt: text.Colors{text.FgHiYellow},
		Title:  text.Colors{text.FgHiBlue},
	}
}

// PlainPalette is used when colors are disabled.
func PlainPalette() Palette {
	return Palette{}
}

func paint(c text.Colors, s string) string {
	if len(c) == 0 {
		return s
	}
	return c.Sprint(s)
}

type Console struct {
	in      *bufio.Reader
	out     io.Writer
	palette Palette
}

func NewConsole(in io.Reader, out io.Writer, palette Palette) *Console {
	return &Console{in: bufio.NewReader(in), out: out, palette: palette}
}

func (c *Console) Out() io.Writer {
	return c.out
}

func (c *Console) Info(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s %s\n", paint(c.palette.Info, "[*]"), fmt.Sprintf(format, args...))
}

func (c *Console) Error(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s %s\n", paint(c.palette.Error, "[!]"), fmt.Sprintf(format, args...))
}

// Title prints a section header like "[O] Дубликаты:".
func (c *Console) Title(title string) {
	fmt.Fprintf(c.out, "%s %s\n", paint(c.palette.Info, "[O]"), paint(c.palette.Title, title))
}

// Ask prints the prompt and returns one trimmed line of input.
// On end of input it returns io.EOF, even when a partial line was read.
func (c *Console) Ask(marker, prompt string) (string, error) {
	colors := c.palette.Prompt
	if marker == "[*]" {
		colors = c.palette.Info
	}
	fmt.Fprintf(c.out, "%s %s", paint(colors, marker), prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return strings.TrimSpace(line), io.EOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a y/n question until one of the two answers is given.
func (c *Console) Confirm(prompt string) (bool, error) {
	for {
		answer, err := c.Ask("[?]", prompt)
		if err != nil && answer == "" {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		if err != nil {
			return false, err
		}
		c.Error("Некорректный ввод. Введите 'y' или 'n'.")
	}
}
