package notifier

import (
	"fmt"
	"html"
	"strings"

	"SP500Keeper/internal/model"
)

// FormatAppended formats the message sent when a new closing is added to the dataset.
func FormatAppended(symbol string, obs model.Observation, rows int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📈 <b>%s</b> dataset updated\n\n", html.EscapeString(symbol)))
	b.WriteString(fmt.Sprintf("Month: %s\n", obs.Month()))
	b.WriteString(fmt.Sprintf("Closing: %s\n", obs.ClosingString()))
	b.WriteString(fmt.Sprintf("Rows: %d", rows))
	return b.String()
}
