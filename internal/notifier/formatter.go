package notifier

import (
	"fmt"
	"strings"
	"time"

	"SiliconMeter/internal/model"
	"SiliconMeter/internal/runner"
)

var sentimentBadge = map[model.Sentiment]string{
	model.SentimentPanic: "🔴 PANIC",
	model.SentimentBuy:   "🟢 BUY",
	model.SentimentHold:  "⚪ HOLD",
}

// FormatRunReport formats a batch run into a Telegram message.
func FormatRunReport(report *runner.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>SiliconMeter</b> | %s (%s)\n\n", report.Date, report.Source))

	for _, res := range report.Results {
		if res.Err != nil {
			b.WriteString(fmt.Sprintf("  %s: ❌ no price this run\n", res.Name))
			continue
		}
		badge, ok := sentimentBadge[res.Sentiment]
		if !ok {
			badge = string(res.Sentiment)
		}
		b.WriteString(fmt.Sprintf("  %s: $%.2f (%+.2f%%) %s\n",
			res.Name, res.Price, res.ChangePercent, badge))
	}

	b.WriteString(fmt.Sprintf("\n✅ %d updated | ❌ %d failed | ⏱ %s\n",
		report.Updated, report.Failed, report.Duration.Round(time.Millisecond)))

	return b.String()
}
