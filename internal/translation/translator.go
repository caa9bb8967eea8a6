package translation

import "context"

// Translator converts text between the two supported languages. The lang
// argument is the source language: English input yields French output and
// vice versa. Callers treat any error as degraded, never fatal: the send
// path substitutes the original text and proceeds.
type Translator interface {
	Translate(ctx context.Context, text, lang string) (string, error)
}
