package i18n

import (
	"fmt"
	"time"
)

// Month names for date display. The calendar is Gregorian in both locales;
// only the month names differ.
var hindiMonths = [12]string{
	"जनवरी", "फ़रवरी", "मार्च", "अप्रैल", "मई", "जून",
	"जुलाई", "अगस्त", "सितंबर", "अक्टूबर", "नवंबर", "दिसंबर",
}

// FormatDate renders t as "2 January 2006" with the month name localized.
func FormatDate(locale Locale, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if locale == Hindi {
		return fmt.Sprintf("%d %s %d", t.Day(), hindiMonths[t.Month()-1], t.Year())
	}
	return fmt.Sprintf("%d %s %d", t.Day(), t.Month().String(), t.Year())
}
