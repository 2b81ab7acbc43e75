package conversation

import (
	"regexp"
	"strings"

	"github.com/DIMO-Network/insurance-chatbot/internal/messenger"
	"github.com/google/cel-go/cel"
)

// Turn is one free text message from a sender.
type Turn struct {
	SenderID string
	Text     string
}

// ReplyFunc produces the replies for a matched rule and may record intake fields.
type ReplyFunc func(e *Engine, turn Turn) ([]messenger.SendRequest, error)

// Rule pairs a CEL condition over the message text with the reply sent when it matches.
// Rules are evaluated in order and the first match wins.
type Rule struct {
	Name      string
	Condition string
	Reply     ReplyFunc
}

type compiledRule struct {
	Rule
	program cel.Program
}

// DefaultRules returns the claim intake and sales dialogue in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:      "policy_query",
			Condition: `text.contains("保單") && text.contains("查")`,
			Reply:     (*Engine).replyPolicyQuery,
		},
		{
			Name:      "other_plans",
			Condition: `text.contains("其他") && (text.contains("計劃") || text.contains("保險"))`,
			Reply:     (*Engine).replyOtherPlans,
		},
		{
			Name:      "hospitalized",
			Condition: `text.contains("住院了")`,
			Reply:     replyTexts(textAskFileClaim, textBenefitsDisclosure),
		},
		{
			Name:      "claim_start",
			Condition: `text.startsWith("好")`,
			Reply:     replyTexts(textIncidentDatePrompt),
		},
		{
			Name:      "incident_date",
			Condition: `text.contains("年") && text.contains("月") && text.contains("日")`,
			Reply:     recordAndPrompt(func(f *Fields, v string) { f.PolicyDate = v }, textPayerTypePrompt),
		},
		{
			Name:      "payer_type",
			Condition: `["健保", "自費", "其他"].exists(p, text.startsWith(p))`,
			Reply:     recordAndPrompt(func(f *Fields, v string) { f.PolicyType = v }, textHospitalPrompt),
		},
		{
			Name:      "hospital",
			Condition: `text.contains("醫院")`,
			Reply:     recordAndPrompt(func(f *Fields, v string) { f.Hospital = v }, textUploadPrompt),
		},
	}
}

// commands are matched against normalised text once no rule matched.
var commands = map[string]ReplyFunc{
	"hello": replyTexts(textGreeting),
	"hi":    replyTexts(textGreeting),
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// normalizeCommand strips punctuation, surrounding space and case.
func normalizeCommand(text string) string {
	return strings.ToLower(strings.TrimSpace(nonWord.ReplaceAllString(text, "")))
}

func replyTexts(texts ...string) ReplyFunc {
	return func(_ *Engine, turn Turn) ([]messenger.SendRequest, error) {
		replies := make([]messenger.SendRequest, 0, len(texts))
		for _, text := range texts {
			replies = append(replies, messenger.NewTextMessage(turn.SenderID, text))
		}
		return replies, nil
	}
}

// recordAndPrompt stores the verbatim text into one intake field, replacing any earlier answer.
func recordAndPrompt(set func(*Fields, string), prompt string) ReplyFunc {
	return func(e *Engine, turn Turn) ([]messenger.SendRequest, error) {
		e.store.Update(turn.SenderID, func(f *Fields) {
			set(f, turn.Text)
		})
		return []messenger.SendRequest{messenger.NewTextMessage(turn.SenderID, prompt)}, nil
	}
}

func (e *Engine) replyPolicyQuery(turn Turn) ([]messenger.SendRequest, error) {
	overview, err := e.policyOverview(turn.SenderID)
	if err != nil {
		return nil, err
	}
	return []messenger.SendRequest{
		messenger.NewTextMessage(turn.SenderID, textAnnouncePolicies),
		overview,
	}, nil
}

func (e *Engine) replyOtherPlans(turn Turn) ([]messenger.SendRequest, error) {
	profile, err := e.profileConfirmation(turn.SenderID)
	if err != nil {
		return nil, err
	}
	return []messenger.SendRequest{
		messenger.NewTextMessage(turn.SenderID, textConfirmProfile),
		profile,
	}, nil
}
