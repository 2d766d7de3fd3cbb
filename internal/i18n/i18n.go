// Package i18n holds the localized string tables for coaching output. The
// rule engine emits structured categories only; this package is the single
// place where categories become prose, so coaching logic stays testable
// without string fixtures.
package i18n

import "slimcoach/internal/domain"

// Language selects a string table.
type Language string

const (
	English Language = "en"
	Amharic Language = "am"
)

// ParseLanguage maps a request parameter to a supported language,
// defaulting to English.
func ParseLanguage(s string) Language {
	if Language(s) == Amharic {
		return Amharic
	}
	return English
}

// CategoryText is the localized title and body for one recommendation.
type CategoryText struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Table maps (language, category) to coaching text. It is a plain value so
// deployments can swap in their own copy.
type Table map[Language]map[domain.Category]CategoryText

// Lookup returns the text for a category, falling back to English when the
// language or entry is missing.
func (t Table) Lookup(lang Language, cat domain.Category) CategoryText {
	if m, ok := t[lang]; ok {
		if txt, ok := m[cat]; ok {
			return txt
		}
	}
	return t[English][cat]
}

// Default is the built-in English/Amharic coaching table.
var Default = Table{
	English: {
		domain.CategoryReset: {
			Title: "Reset & Restart",
			Body:  "It looks like a tough week. For next week, focus solely on drinking 3L of water and eating a healthy breakfast. Ignore the rest until you build momentum.",
		},
		domain.CategoryKitchenFocus: {
			Title: "Kitchen Focus Needed",
			Body:  "Your workouts are good, but the diet is slipping. Next week, try meal prepping on Sunday so you don't have to make decisions when you are hungry.",
		},
		domain.CategoryMoveMore: {
			Title: "Move More",
			Body:  "Your nutrition is on point! The weight isn't moving because movement is low. Commit to just 15 minutes of walking daily next week.",
		},
		domain.CategoryLevelUp: {
			Title: "Level Up",
			Body:  "Incredible week! You are crushing it. Next week, try adding 1kg weights to your workout or reducing your eating window by 1 hour.",
		},
	},
	Amharic: {
		domain.CategoryReset: {
			Title: "እንደገና እንጀምር",
			Body:  "ይህ ሳምንት ከባድ ነበር። ለሚቀጥለው ሳምንት በቀን 3 ሊትር ውሃ መጠጣት እና ጤናማ ቁርስ መብላት ላይ ብቻ ያተኩሩ።",
		},
		domain.CategoryKitchenFocus: {
			Title: "አመጋገብ ላይ ትኩረት",
			Body:  "ስፖርትዎ ጥሩ ነው፤ ነገር ግን አመጋገብዎ ክፍተት አለው። በሚቀጥለው ሳምንት ምግቦን ቀድመው ያዘጋጁ።",
		},
		domain.CategoryMoveMore: {
			Title: "እንቅስቃሴ ይጨምሩ",
			Body:  "አመጋገብዎ በጣም ጥሩ ነው! እንቅስቃሴ ስለሌለ ግን ክብደትዎ አልቀነሰም። በሚቀጥለው ሳምንት በቀን 15 ደቂቃ ለመራመድ ይሞክሩ።",
		},
		domain.CategoryLevelUp: {
			Title: "በጣም ጎበዝ!",
			Body:  "በጣም ውጤታማ ሳምንት ነበር። በሚቀጥለው ሳምንት የስፖርት ክብደት ይጨምሩ ወይም የመመገቢያ ሰዓትን በ 1 ሰዓት ይቀንሱ።",
		},
	},
}

// AdviceQuotaFallback is shown when the advice provider is rate limited.
func AdviceQuotaFallback(lang Language) string {
	if lang == Amharic {
		return "በጣም ብዙ ጥያቄዎች ስለተላኩ እባክዎ ትንሽ ይጠብቁ።"
	}
	return "Traffic is high. Please wait a minute and try again."
}

// AdviceErrorFallback is shown for any other advice provider failure.
func AdviceErrorFallback(lang Language) string {
	if lang == Amharic {
		return "ይቅርታ፣ ችግር አጋጥሟል። እባክዎ እንደገና ይሞክሩ።"
	}
	return "Sorry, I encountered an issue. Please try again."
}
