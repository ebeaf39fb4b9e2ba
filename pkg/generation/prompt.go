package generation

import (
	"fmt"
	"strings"
)

func styleInstruction(style Style) string {
	switch style {
	case StyleCasual:
		return "קליל וידידותי, כאילו אתה משוחח עם חבר"
	case StyleFunny:
		return "מצחיק והומוריסטי, עם נימה קלילה ומשעשעת"
	case StyleSensitive:
		return "רגיש ואמפתי, עם הבנה לצרכי הלקוח"
	case StyleFormal:
		return "רשמי ומכובד, מתאים לתקשורת עסקית ברמה גבוהה"
	default:
		return "מקצועי ורשמי, עם שפה עסקית ברורה"
	}
}

func emojiInstruction(includeEmojis bool) string {
	if includeEmojis {
		return "שלב אימוג׳ים מתאימים בהודעה כדי להוסיף עניין ויזואלי"
	}

	return "אל תשתמש באימוג׳ים בהודעה"
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "לא צוין"
	}

	return s
}

func systemPrompt(style Style) string {
	return "אתה עוזר כתיבה מקצועי. עליך לנסח הודעות שיווקיות בעברית לפי הסגנון המבוקש. " +
		"הטקסט חייב להיות בעברית ולהתאים לסגנון: " + styleInstruction(style)
}

func userPrompt(req Request) string {
	return fmt.Sprintf(`אתה עוזר כתיבה מקצועי שמסייע בכתיבת הודעות שיווקיות עבור מערכת אוטומציה שיווקית.

מידע על העסק וקהל היעד:
%s

קטגוריית האוטומציה: %s
כותרת האוטומציה: %s
תיאור האוטומציה: %s

סגנון כתיבה: %s
%s

אנא כתוב הודעה שיווקית אפקטיבית שמתאימה לאוטומציה זו ולקהל היעד.
ההודעה צריכה להיות בעברית, בטון שמתאים לסגנון הכתיבה שנבחר, ולכלול:
1. פנייה אישית (אם רלוונטי)
2. הצגת הערך המרכזי
3. קריאה לפעולה ברורה
אורך ההודעה: 3-5 משפטים.`,
		req.BusinessInfo,
		orUnknown(req.Category),
		orUnknown(req.Title),
		orUnknown(req.Description),
		styleInstruction(req.Style),
		emojiInstruction(req.IncludeEmojis))
}
