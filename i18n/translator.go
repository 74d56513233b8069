package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "kind").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			if exp := data["expected"]; exp != "" {
				return exp + " を期待しました"
			}
			return "型が不正です"
		case "overflow":
			if kind := data["kind"]; kind != "" {
				return kind + " の範囲外です"
			}
			return "範囲外です"
		case "not_finite":
			return "有限の数値が必要です"
		case "required":
			return "必須プロパティが不足しています"
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "too_small":
			return "小さすぎます"
		case "too_big":
			return "大きすぎます"
		case "unknown_key":
			return "未知のプロパティです"
		case "pattern":
			return "パターンに一致しません"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			if exp := data["expected"]; exp != "" {
				return "expected " + exp
			}
			return "invalid type"
		case "overflow":
			if kind := data["kind"]; kind != "" {
				return kind + " out of range"
			}
			return "out of range"
		case "not_finite":
			return "expected finite number"
		case "required":
			return "required property missing"
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "too_small":
			return "too small"
		case "too_big":
			return "too big"
		case "unknown_key":
			return "unknown property"
		case "pattern":
			return "does not match pattern"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
