package catalog

import "github.com/leadflow/intake/pkg/models"

// Well-known option ids referenced outside the catalog.
const (
	OptionSendMessage = "send_message"
	OptionSchedule    = "schedule"
)

func defaultTriggerOptions() []StepOption {
	return []StepOption{
		{
			ID:          "facebook_lead",
			Role:        models.StepTrigger,
			Label:       "ליד נכנס מפייסבוק",
			Description: "הפעל כאשר ליד חדש נכנס מקמפיין פייסבוק",
		},
		{
			ID:          "website_lead",
			Role:        models.StepTrigger,
			Label:       "ליד נכנס מהאתר",
			Description: "הפעל כאשר ליד חדש נרשם דרך האתר",
		},
		{
			ID:          "whatsapp_lead",
			Role:        models.StepTrigger,
			Label:       "ליד נכנס מקמפיין הודעות ווטצאפ",
			Description: "הפעל כאשר ליד חדש מגיע מקמפיין ווטצאפ",
		},
		{
			ID:          "tiktok_lead",
			Role:        models.StepTrigger,
			Label:       "ליד נכנס מטיקטוק",
			Description: "הפעל כאשר ליד חדש נכנס מקמפיין טיקטוק",
		},
		{
			ID:          "instagram_comment",
			Role:        models.StepTrigger,
			Label:       "תגובה באינסטגרם + הודעה בפרטי",
			Description: "הפעל כאשר מישהו מגיב לפוסט באינסטגרם עם מילות מפתח",
			Fields: []models.FieldDefinition{
				{
					ID:          "trigger_keywords",
					Label:       "מילות הפעלה לתגובה",
					Kind:        models.FieldText,
					Placeholder: "לדוגמה: שולחת, רוצה, אני, לינק",
					Description: "מילים שיפעילו את האוטומציה כאשר מופיעות בתגובה (ניתן יותר ממילה אחת)",
					Required:    true,
				},
				{
					ID:          "public_reply",
					Label:       "תגובה פומבית לפוסט",
					Kind:        models.FieldTextarea,
					Placeholder: "לדוגמה: שלחנו לך הודעה בפרטי 💬",
					Required:    true,
				},
				{
					ID:          "private_message",
					Label:       "הודעה פרטית באינסטגרם",
					Kind:        models.FieldTextarea,
					Required:    true,
				},
				{
					ID:       "invalid_response_message",
					Label:    "הודעה למקרה של תגובה לא תקינה",
					Kind:     models.FieldTextarea,
					Required: true,
				},
				{
					ID:       "success_response_message",
					Label:    "הודעה לאחר קבלת מספר טלפון",
					Kind:     models.FieldTextarea,
					Required: true,
				},
				{
					ID:    "enable_facebook_automation",
					Label: "האם לבצע תהליך דומה גם בפייסבוק?",
					Kind:  models.FieldCheckbox,
				},
			},
		},
		{
			ID:          "lead_no_response_24h",
			Role:        models.StepTrigger,
			Label:       "עבר 24 שעות ואף אחד לא טיפל בליד",
			Description: "הפעל כאשר ליד לא קיבל מענה במשך 24 שעות",
		},
		{
			ID:          "meeting_scheduled",
			Role:        models.StepTrigger,
			Label:       "נקבעה פגישה",
			Description: "הפעל כאשר נקבעת פגישה עם הליד",
		},
		{
			ID:          "not_interested_14d",
			Role:        models.StepTrigger,
			Label:       "הודעה ללקוח לא מעוניין אחרי 14 יום",
			Description: "הפעל 14 יום לאחר שהליד סומן כלא מעוניין",
		},
		{
			ID:          "deal_closed",
			Role:        models.StepTrigger,
			Label:       "הודעה לאחר סגירת עסקה",
			Description: "הפעל כאשר עסקה נסגרת בהצלחה",
		},
		{
			ID:          OptionSchedule,
			Role:        models.StepTrigger,
			Label:       "תזמון קבוע",
			Description: "הפעל לפי לוח זמנים קבוע",
			Fields: []models.FieldDefinition{
				{
					ID:          "cron_expression",
					Label:       "תזמון (cron)",
					Kind:        models.FieldText,
					Placeholder: "0 9 * * 0",
					Description: "ביטוי cron סטנדרטי בן חמישה שדות",
					Required:    true,
				},
			},
		},
	}
}

func defaultActionOptions() []StepOption {
	return []StepOption{
		{
			ID:          "assign_rep",
			Role:        models.StepAction,
			Label:       "שיוך לנציג",
			Description: "שייך את הליד לנציג מכירות",
			Fields: []models.FieldDefinition{
				{
					ID:    "rep",
					Label: "בחר נציג",
					Kind:  models.FieldSelect,
					Options: []models.FieldOption{
						{Value: "rep1", Label: "נציג 1"},
						{Value: "rep2", Label: "נציג 2"},
						{Value: "rep3", Label: "נציג 3"},
						{Value: "auto", Label: "הקצאה אוטומטית"},
					},
				},
			},
		},
		{
			ID:          OptionSendMessage,
			Role:        models.StepAction,
			Label:       "שליחת הודעה",
			Description: "שלח הודעת טקסט אוטומטית",
			Fields: []models.FieldDefinition{
				{
					ID:          "message",
					Label:       "תוכן ההודעה",
					Kind:        models.FieldTextarea,
					Placeholder: "הכנס את תוכן ההודעה...",
				},
			},
		},
		{
			ID:          "send_video",
			Role:        models.StepAction,
			Label:       "שליחת סרטון",
			Description: "שלח סרטון אוטומטי",
			Fields: []models.FieldDefinition{
				{
					ID:          "video_url",
					Label:       "קישור לסרטון",
					Kind:        models.FieldURL,
					Placeholder: "https://example.com/video.mp4",
				},
				{
					ID:          "message",
					Label:       "הודעה מקדימה",
					Kind:        models.FieldTextarea,
					Placeholder: "הודעה שתופיע לפני הסרטון...",
				},
			},
		},
		{
			ID:          "send_pdf",
			Role:        models.StepAction,
			Label:       "שליחת קובץ PDF",
			Description: "שלח קובץ PDF אוטומטי",
			Fields: []models.FieldDefinition{
				{
					ID:          "pdf_url",
					Label:       "קישור לקובץ",
					Kind:        models.FieldURL,
					Placeholder: "https://example.com/document.pdf",
				},
				{
					ID:          "message",
					Label:       "הודעה מקדימה",
					Kind:        models.FieldTextarea,
					Placeholder: "הודעה שתופיע לפני הקובץ...",
				},
			},
		},
		{
			ID:          "notify_team",
			Role:        models.StepAction,
			Label:       "התראה לאיש צוות",
			Description: "שלח התראה לאיש צוות",
			Fields: []models.FieldDefinition{
				{
					ID:    "team_member",
					Label: "בחר איש צוות",
					Kind:  models.FieldSelect,
					Options: []models.FieldOption{
						{Value: "member1", Label: "איש צוות 1"},
						{Value: "member2", Label: "איש צוות 2"},
						{Value: "member3", Label: "איש צוות 3"},
						{Value: "all", Label: "כל הצוות"},
					},
				},
				{
					ID:          "message",
					Label:       "תוכן ההתראה",
					Kind:        models.FieldTextarea,
					Placeholder: "הכנס את תוכן ההתראה...",
				},
			},
		},
		{
			ID:          "send_email",
			Role:        models.StepAction,
			Label:       "שליחת מייל",
			Description: "שלח הודעת דוא\"ל אוטומטית",
			Fields: []models.FieldDefinition{
				{
					ID:          "subject",
					Label:       "נושא",
					Kind:        models.FieldText,
					Placeholder: "נושא המייל...",
				},
				{
					ID:          "content",
					Label:       "תוכן",
					Kind:        models.FieldTextarea,
					Placeholder: "תוכן המייל...",
				},
			},
		},
		{
			ID:          "wait",
			Role:        models.StepAction,
			Label:       "המתנה",
			Description: "המתן פרק זמן מוגדר",
			Fields: []models.FieldDefinition{
				{
					ID:    "duration",
					Label: "משך זמן",
					Kind:  models.FieldSelect,
					Options: []models.FieldOption{
						{Value: "300", Label: "5 דקות"},
						{Value: "900", Label: "15 דקות"},
						{Value: "3600", Label: "שעה"},
						{Value: "86400", Label: "24 שעות"},
						{Value: "604800", Label: "שבוע"},
					},
				},
			},
		},
		{
			ID:          "add_to_pipeline",
			Role:        models.StepAction,
			Label:       "הוספת הליד לפייפליין",
			Description: "הוסף את הליד לפייפליין מכירות",
			Fields: []models.FieldDefinition{
				{
					ID:    "pipeline",
					Label: "בחר פייפליין",
					Kind:  models.FieldSelect,
					Options: []models.FieldOption{
						{Value: "sales", Label: "פייפליין מכירות"},
						{Value: "support", Label: "פייפליין תמיכה"},
						{Value: "custom", Label: "פייפליין מותאם אישית"},
					},
				},
				{
					ID:    "stage",
					Label: "שלב התחלתי",
					Kind:  models.FieldSelect,
					Options: []models.FieldOption{
						{Value: "new", Label: "ליד חדש"},
						{Value: "contacted", Label: "נוצר קשר"},
						{Value: "qualified", Label: "ליד מוכשר"},
						{Value: "proposal", Label: "הצעת מחיר"},
					},
				},
			},
		},
		{
			ID:          "update_pipeline_stage",
			Role:        models.StepAction,
			Label:       "עדכון שלב בפייפליין",
			Description: "שנה את השלב של הליד בפייפליין",
			Fields: []models.FieldDefinition{
				{
					ID:    "stage",
					Label: "שלב חדש",
					Kind:  models.FieldSelect,
					Options: []models.FieldOption{
						{Value: "contacted", Label: "נוצר קשר"},
						{Value: "qualified", Label: "ליד מוכשר"},
						{Value: "proposal", Label: "הצעת מחיר"},
						{Value: "negotiation", Label: "משא ומתן"},
						{Value: "closed_won", Label: "נסגר בהצלחה"},
						{Value: "closed_lost", Label: "נסגר ללא הצלחה"},
					},
				},
			},
		},
		{
			ID:          "add_note",
			Role:        models.StepAction,
			Label:       "הוספת הערה לליד",
			Description: "הוסף הערה אוטומטית לכרטיס הליד",
			Fields: []models.FieldDefinition{
				{
					ID:          "note",
					Label:       "תוכן ההערה",
					Kind:        models.FieldTextarea,
					Placeholder: "הכנס את תוכן ההערה...",
				},
			},
		},
	}
}
