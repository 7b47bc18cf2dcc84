package ui

import (
	"errors"
	"log"
	"strings"

	"github.com/ncruces/zenity"
)

// ErrCanceled is returned when the user dismisses a dialog.
var ErrCanceled = zenity.ErrCanceled

// Dialogs shows modal prompts titled with the application name.
type Dialogs struct {
	AppName string
}

// PromptText asks for a single line of text.
func (d Dialogs) PromptText(title, prompt, initial string) (string, error) {
	text, err := zenity.Entry(prompt,
		zenity.Title(d.AppName+" - "+title),
		zenity.EntryText(initial),
	)
	if err != nil {
		return "", dialogErr(title, err)
	}
	return text, nil
}

// PromptMacroText asks for macro text. Line breaks and tabs are edited
// as \n and \t since the entry dialog is single line.
func (d Dialogs) PromptMacroText(title, initial string) (string, error) {
	text, err := d.PromptText(title, "Macro text (use \\n for a new line, \\t for tab):", EscapeText(initial))
	if err != nil {
		return "", err
	}
	return UnescapeText(text), nil
}

// PromptSecret asks for a secret name and value.
func (d Dialogs) PromptSecret() (name, value string, err error) {
	name, err = d.PromptText("Store Secret", "Secret name (letters, digits, . _ -):", "")
	if err != nil {
		return "", "", err
	}
	name = strings.TrimSpace(name)

	_, value, err = zenity.Password(
		zenity.Title(d.AppName + " - Value for '" + name + "'"),
	)
	if err != nil {
		return "", "", dialogErr("Store Secret", err)
	}
	return name, value, nil
}

// Confirm asks a yes/no question.
func (d Dialogs) Confirm(title, question string) bool {
	err := zenity.Question(question,
		zenity.Title(d.AppName+" - "+title),
		zenity.QuestionIcon,
	)
	if err != nil && !errors.Is(err, zenity.ErrCanceled) {
		log.Printf("Dialogs: question '%s' failed: %v", title, err)
	}
	return err == nil
}

// Error shows an error message box.
func (d Dialogs) Error(title, message string) {
	if err := zenity.Error(message, zenity.Title(d.AppName+" - "+title), zenity.ErrorIcon); err != nil {
		log.Printf("Dialogs: error box '%s' failed: %v", title, err)
	}
}

// Info shows an informational message box.
func (d Dialogs) Info(title, message string) {
	if err := zenity.Info(message, zenity.Title(d.AppName+" - "+title), zenity.InfoIcon); err != nil {
		log.Printf("Dialogs: info box '%s' failed: %v", title, err)
	}
}

func dialogErr(title string, err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		log.Printf("Dialogs: '%s' canceled", title)
		return ErrCanceled
	}
	log.Printf("Dialogs: '%s' failed: %v", title, err)
	return err
}

var (
	textEscaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\t", `\t`)
	textUnescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t")
)

// EscapeText renders line breaks and tabs as backslash escapes.
func EscapeText(s string) string {
	return textEscaper.Replace(strings.ReplaceAll(s, "\r\n", "\n"))
}

// UnescapeText reverses EscapeText.
func UnescapeText(s string) string {
	return textUnescaper.Replace(s)
}
