package catalog

import "github.com/leadflow/intake/pkg/models"

func valuePtr(v models.Value) *models.Value {
	return &v
}

func yesNoOptions() []models.FieldOption {
	return []models.FieldOption{
		{Value: "yes", Label: "כן"},
		{Value: "no", Label: "לא"},
	}
}

// defaultAutomations is the product's automation catalog. Checkbox gates use
// boolean expected values and radio gates use their option strings, so the
// visibility evaluator compares like with like.
func defaultAutomations() []models.Automation {
	return []models.Automation{
		{
			ID:          1,
			Title:       "אוטומציית ליד מפייסבוק",
			Description: "אוטומציה להפעלה כאשר ליד נכנס מפייסבוק",
			Category:    models.CategoryLeads,
			Icon:        "facebook",
			Fields: []models.FieldDefinition{
				{
					ID:           "enable_facebook_automation",
					Label:        "האם להפעיל אוטומציה כשליד נכנס מפייסבוק?",
					Kind:         models.FieldCheckbox,
					DefaultValue: valuePtr(models.BoolValue(false)),
				},
				{
					ID:          "facebook_lead_message",
					Label:       "איזה הודעה תרצה שהלקוח יקבל בוואטסאפ לאחר שהוא משאיר את הפרטים כליד?",
					Kind:        models.FieldTextarea,
					Placeholder: "שלום! תודה שהשארת פרטים בפייסבוק. אנחנו שמחים שפנית אלינו ונחזור אליך בהקדם.",
					SupportsAI:  true,
					ShowWhen:    &models.Visibility{Field: "enable_facebook_automation", Value: models.BoolValue(true)},
				},
			},
		},
		{
			ID:          2,
			Title:       "אוטומציית ליד מטיק טוק",
			Description: "אוטומציה להפעלה כאשר ליד נכנס מטיק טוק",
			Category:    models.CategoryLeads,
			Icon:        "video",
			Fields: []models.FieldDefinition{
				{
					ID:           "enable_tiktok_automation",
					Label:        "האם להפעיל אוטומציה כשליד נכנס מטיק טוק?",
					Kind:         models.FieldCheckbox,
					DefaultValue: valuePtr(models.BoolValue(false)),
				},
				{
					ID:          "tiktok_lead_message",
					Label:       "איזה הודעה תרצה שהלקוח יקבל בוואטסאפ לאחר שהוא משאיר את הפרטים כליד?",
					Kind:        models.FieldTextarea,
					Placeholder: "שלום! תודה שהשארת פרטים בטיק טוק. אנחנו שמחים שפנית אלינו ונחזור אליך בהקדם.",
					SupportsAI:  true,
					ShowWhen:    &models.Visibility{Field: "enable_tiktok_automation", Value: models.BoolValue(true)},
				},
			},
		},
		{
			ID:          3,
			Title:       "אוטומציית ליד מהאתר",
			Description: "אוטומציה להפעלה כאשר ליד נכנס מהאתר",
			Category:    models.CategoryLeads,
			Icon:        "globe",
			Fields: []models.FieldDefinition{
				{
					ID:           "enable_website_automation",
					Label:        "האם להפעיל אוטומציה כשליד נכנס מהאתר?",
					Kind:         models.FieldCheckbox,
					DefaultValue: valuePtr(models.BoolValue(false)),
				},
				{
					ID:          "website_lead_message",
					Label:       "איזה הודעה תרצה שהלקוח יקבל בוואטסאפ לאחר שהוא משאיר את הפרטים כליד?",
					Kind:        models.FieldTextarea,
					Placeholder: "שלום! תודה שהשארת פרטים באתר שלנו. אנחנו שמחים שפנית אלינו ונחזור אליך בהקדם.",
					SupportsAI:  true,
					ShowWhen:    &models.Visibility{Field: "enable_website_automation", Value: models.BoolValue(true)},
				},
			},
		},
		{
			ID:          4,
			Title:       "אוטומציית עסקה נסגרת",
			Description: "אוטומציה להפעלה כאשר עסקה נסגרת",
			Category:    models.CategorySales,
			Icon:        "check-circle",
			Fields: []models.FieldDefinition{
				{
					ID:          "deal_closed_message",
					Label:       "איזה הודעת וואטסאפ לשלוח ללקוח כשנסגרת עסקה?",
					Kind:        models.FieldTextarea,
					Placeholder: "שלום! תודה שבחרת בנו. אנחנו שמחים לבשר לך שהעסקה נסגרה בהצלחה ונשמח לעמוד לשירותך.",
					SupportsAI:  true,
				},
			},
		},
		{
			ID:          5,
			Title:       "אוטומציית לקוח לא מעוניין",
			Description: "אוטומציה להפעלה כאשר לקוח עובר לסטטוס לא מעוניין",
			Category:    models.CategoryClients,
			Icon:        "x-circle",
			Fields: []models.FieldDefinition{
				{
					ID:          "not_interested_message",
					Label:       "איזה הודעה הלקוח יקבל אחרי שבועיים מעבר לסטטוס לא מעוניין?",
					Kind:        models.FieldTextarea,
					Placeholder: "שלום! עברו שבועיים מאז שדיברנו. רצינו לבדוק האם חל שינוי ואתה מעוניין לשמוע עוד על השירותים שלנו?",
					SupportsAI:  true,
				},
			},
		},
		{
			ID:          6,
			Title:       "אוטומציית וואטסאפ ישיר",
			Description: "אוטומציה להפעלה בקמפיין וואטסאפ הודעות ישיר",
			Category:    models.CategoryMarketing,
			Icon:        "message-circle",
			Fields: []models.FieldDefinition{
				{
					ID:           "enable_whatsapp_direct",
					Label:        "האם להפעיל אוטומציה בקמפיין וואטסאפ הודעות ישיר?",
					Kind:         models.FieldCheckbox,
					DefaultValue: valuePtr(models.BoolValue(false)),
				},
				{
					ID:          "whatsapp_template_message",
					Label:       "איזה הודעה אנחנו מקבלים קודם מהלקוח? (הודעת תבנית)",
					Kind:        models.FieldTextarea,
					Placeholder: "אני מעוניין לשמוע עוד על השירותים שלכם",
					SupportsAI:  true,
					ShowWhen:    &models.Visibility{Field: "enable_whatsapp_direct", Value: models.BoolValue(true)},
				},
				{
					ID:          "whatsapp_response_message",
					Label:       "איזה הודעת וואטסאפ לשלוח ללקוח בתגובה?",
					Kind:        models.FieldTextarea,
					Placeholder: "שלום! תודה שפנית אלינו. נשמח לספר לך עוד על השירותים שלנו. מתי נוח לך לשוחח?",
					SupportsAI:  true,
					ShowWhen:    &models.Visibility{Field: "enable_whatsapp_direct", Value: models.BoolValue(true)},
				},
			},
		},
		{
			ID:          7,
			Title:       "התראות פנימיות לצוות",
			Description: "התראות פנימיות לצוות כאשר ליד לא מטופל",
			Category:    models.CategoryLeads,
			Icon:        "alert-triangle",
			Fields: []models.FieldDefinition{
				{
					ID:          "team_notification_message",
					Label:       "איזה הודעה תשלח לצוות ברגע שעבר 24 שעות ואף אחד לא טיפל בליד?",
					Kind:        models.FieldTextarea,
					Placeholder: "שימו לב! ליד לא טופל במשך 24 שעות. אנא טפלו בהקדם.",
					SupportsAI:  true,
				},
			},
		},
		{
			ID:          8,
			Title:       "אוטומציית קביעת פגישה",
			Description: "אוטומציה להפעלה כאשר נקבעת פגישה",
			Category:    models.CategorySales,
			Icon:        "calendar",
			Fields: []models.FieldDefinition{
				{
					ID:          "meeting_scheduled_message",
					Label:       "איזה הודעה הלקוח יקבל כשנקבעה פגישה?",
					Kind:        models.FieldTextarea,
					Placeholder: "שלום! הפגישה נקבעה בהצלחה. נשמח לראותך ביום {date} בשעה {time}.",
					SupportsAI:  true,
				},
				{
					ID:          "meeting_reminder_24h",
					Label:       "הודעת תזכורת 24 שעות לפני הפגישה",
					Kind:        models.FieldTextarea,
					Placeholder: "שלום! רק להזכיר שמחר בשעה {time} יש לנו פגישה. מחכים לראותך!",
					SupportsAI:  true,
				},
				{
					ID:          "meeting_reminder_1h",
					Label:       "תזכורת שעה לפני הפגישה",
					Kind:        models.FieldTextarea,
					Placeholder: "שלום! הפגישה שלנו מתחילה בעוד כשעה. להתראות בקרוב!",
					SupportsAI:  true,
				},
			},
		},
		{
			ID:          9,
			Title:       "תגובה באינסטגרם + הודעה בפרטי",
			Description: "אוטומציה להפעלה כאשר מישהו מגיב לפוסט באינסטגרם עם מילות מפתח",
			Category:    models.CategoryMarketing,
			Icon:        "instagram",
			Fields: []models.FieldDefinition{
				{
					ID:           "enable_instagram_automation",
					Label:        "האם להפעיל אוטומציה כשמישהו מגיב לפוסט באינסטגרם?",
					Kind:         models.FieldCheckbox,
					DefaultValue: valuePtr(models.BoolValue(false)),
				},
				{
					ID:          "instagram_trigger_keywords",
					Label:       "מילות הפעלה לתגובה בפוסט",
					Kind:        models.FieldText,
					Placeholder: "לדוגמה: שולחת, רוצה, אני, לינק",
					ShowWhen:    &models.Visibility{Field: "enable_instagram_automation", Value: models.BoolValue(true)},
				},
				{
					ID:          "instagram_public_reply",
					Label:       "תגובה פומבית לפוסט",
					Kind:        models.FieldTextarea,
					Placeholder: "לדוגמה: שלחנו לך הודעה בפרטי 💬",
					SupportsAI:  true,
					ShowWhen:    &models.Visibility{Field: "enable_instagram_automation", Value: models.BoolValue(true)},
				},
				{
					ID:          "instagram_private_message",
					Label:       "הודעה פרטית באינסטגרם",
					Kind:        models.FieldTextarea,
					Placeholder: "לדוגמה: היי! 😊\n\nכמו שביקשת, הנה הקישור למדריך: [קישור]\n\nרוצה שנשלח לך פרטים נוספים או נתאם שיחה? כתוב/י לי כאן את מספר הטלפון שלך 👇",
					SupportsAI:  true,
					ShowWhen:    &models.Visibility{Field: "enable_instagram_automation", Value: models.BoolValue(true)},
				},
				{
					ID:          "instagram_invalid_response_message",
					Label:       "הודעה למקרה של תגובה לא תקינה",
					Kind:        models.FieldTextarea,
					Placeholder: "לדוגמה: אולי זו אני, אולי זו המערכת... 😅\n\nאבל נראה שלא קיבלנו מספר טלפון.\n\nאם בא לך שנחזור אליך – כתוב/י כאן את המספר שלך 👇",
					SupportsAI:  true,
					ShowWhen:    &models.Visibility{Field: "enable_instagram_automation", Value: models.BoolValue(true)},
				},
				{
					ID:          "instagram_success_response_message",
					Label:       "הודעה לאחר קבלת מספר טלפון",
					Kind:        models.FieldTextarea,
					Placeholder: "לדוגמה: תודה! קיבלנו את המספר שלך ונחזור אליך בהקדם 🙏",
					SupportsAI:  true,
					ShowWhen:    &models.Visibility{Field: "enable_instagram_automation", Value: models.BoolValue(true)},
				},
				{
					ID:           "enable_facebook_comments_automation",
					Label:        "האם לבצע תהליך דומה גם בפייסבוק?",
					Kind:         models.FieldCheckbox,
					DefaultValue: valuePtr(models.BoolValue(false)),
					ShowWhen:     &models.Visibility{Field: "enable_instagram_automation", Value: models.BoolValue(true)},
				},
			},
		},
		{
			ID:          10,
			Title:       "תיאום פגישות",
			Description: "הגדרת פרטי פגישות שהלקוח יוכל לתאם דרך המערכת",
			Category:    models.CategoryMeetings,
			Icon:        "calendar",
			Fields: []models.FieldDefinition{
				{
					ID:          "meeting_name",
					Label:       "שם הפגישה שיופיע ללקוח ביומן",
					Kind:        models.FieldText,
					Placeholder: "דוגמה: שיחת היכרות עם [שם העסק], פגישת ייעוץ, אבחון ראשוני",
					Required:    true,
				},
				{
					ID:          "meeting_representative",
					Label:       "מי הנציג שיקבל את הפגישה?",
					Kind:        models.FieldText,
					Placeholder: "הנציג שיקבל את ההתראה והפגישה תישמר ביומן שלו",
					Required:    true,
				},
				{
					ID:          "meeting_available_times",
					Label:       "באילו ימים ושעות ניתן לקבוע את הפגישה?",
					Kind:        models.FieldText,
					Placeholder: "דוגמה: א–ה בין 10:00 ל–15:00 / רק בימי שלישי וחמישי בבוקר",
					Required:    true,
				},
				{
					ID:          "meeting_location",
					Label:       "מה מיקום הפגישה?",
					Kind:        models.FieldText,
					Placeholder: "כתובת מדויקת או קישור לפגישת זום",
					Required:    true,
				},
				{
					ID:          "meeting_duration",
					Label:       "מה אורך הפגישה?",
					Kind:        models.FieldText,
					Placeholder: "לדוגמה: 30 דקות, שעה",
					Required:    true,
				},
				{
					ID:          "no_show_message",
					Label:       "הודעה ללקוח שלא הופיע לפגישה",
					Kind:        models.FieldTextarea,
					Placeholder: "דוגמה: היי [שם], שמנו לב שלא הצלחת להגיע לפגישת [שם הפגישה] – זה לגמרי מובן, קורה לכולם 🙂 אם עדיין רלוונטי לך – אפשר לקבוע פגישה חדשה כאן: 📅 [קישור לתיאום] אם נוח לך יותר שנחזור אליך לתיאום – שלח לנו 1 ונשמח לעזור.",
					SupportsAI:  true,
					Required:    true,
				},
				{
					ID:           "enable_ai_scheduling",
					Label:        "מאשר שימוש בסוכן בינה מלאכותית לתיאום פגישה- ידוע לי שזה בתשלום נוסף",
					Kind:         models.FieldCheckbox,
					DefaultValue: valuePtr(models.BoolValue(false)),
				},
			},
		},
		{
			ID:          11,
			Title:       "מעקב אחר הצעות מחיר",
			Description: "הפעלת מעקב אוטומטי אחר הצעות מחיר וחתימה דיגיטלית",
			Category:    models.CategorySales,
			Icon:        "file-text",
			Fields: []models.FieldDefinition{
				{
					ID:           "enable_price_quote_tracking",
					Label:        "האם אתם רוצים שנפעיל עבורכם מעקב אוטומטי להצעת המחיר?",
					Kind:         models.FieldRadio,
					Options:      yesNoOptions(),
					DefaultValue: valuePtr(models.StringValue("no")),
				},
				{
					ID:          "signed_quote_message",
					Label:       "הודעה לאחר חתימה על הסכם",
					Kind:        models.FieldTextarea,
					Placeholder: "דוגמה: היי [שם] 🙌 קיבלנו את החתימה שלך – תודה על האמון! מכאן אנחנו מתחילים – בקרוב תקבל מאיתנו [הסבר קצר על השלב הבא] ואנחנו זמינים לכל שאלה!",
					SupportsAI:  true,
					ShowWhen:    &models.Visibility{Field: "enable_price_quote_tracking", Value: models.StringValue("yes")},
				},
			},
		},
		{
			ID:          12,
			Title:       "אוטומציות מרכזייה",
			Description: "אוטומציות חכמות לשיחות נכנסות ויוצאות",
			Category:    models.CategoryCallCenter,
			Icon:        "phone",
			Fields: []models.FieldDefinition{
				{
					ID:          "missed_call_message",
					Label:       "הודעה לשיחה נכנסת שלא נענתה",
					Kind:        models.FieldTextarea,
					Placeholder: "דוגמה: היי, ראינו שהתקשרת אלינו ולא הצלחנו לענות. קיבלנו את השיחה שלך ונדאג לחזור אליך בהקדם",
					SupportsAI:  true,
				},
				{
					ID:          "enable_custom_hold_music",
					Label:       "מוזיקת המתנה אישית לעסק",
					Kind:        models.FieldFile,
					Accept:      ".mp3",
					Description: "קובץ המתנה נעימה MP3 בלבד!",
				},
				{
					ID:           "enable_auto_dialer",
					Label:        "להפעיל תותח שיחות?",
					Kind:         models.FieldRadio,
					Options:      yesNoOptions(),
					DefaultValue: valuePtr(models.StringValue("no")),
				},
			},
		},
		{
			ID:          13,
			Title:       "הערות למטמיע",
			Description: "הערות, דגשים או בקשות לפני תחילת העבודה",
			Category:    models.CategoryGeneral,
			Icon:        "message-square",
			Fields: []models.FieldDefinition{
				{
					ID:          "implementation_notes",
					Label:       "הערות למטמיע",
					Kind:        models.FieldTextarea,
					Placeholder: "אפשר לכתוב כאן כל דבר שחשוב לכם: ניסוח, שפה, תהליכים, אנשי קשר או כל פרט קטן שעושה את ההבדל.",
				},
			},
		},
	}
}

func defaultCampaignSources() []CampaignSource {
	return []CampaignSource{
		{Value: "facebook_instagram", Label: "קמפיין לידים פייסבוק אינסטגרם"},
		{Value: "tiktok", Label: "קמפיין לידים טיקטוק"},
		{Value: "whatsapp", Label: "קמפיין הודעות ווטצאפ"},
		{Value: "landing_page", Label: "קמפיין דף נחיתה"},
		{Value: "calls", Label: "קמפיין שיחות"},
		{Value: "linkedin", Label: "קמפיין לינקדין"},
		{Value: "website", Label: "אתר"},
		{Value: "other", Label: "אחר"},
	}
}
