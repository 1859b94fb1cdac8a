package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/futig/fitplan-backend/internal/entity"
)

// MaxMessageLength is the Telegram limit for a single text message.
const MaxMessageLength = 4096

const (
	MsgWelcome = `👋 Hi! I build personalized fitness plans: workout, diet, tips and a daily motivation.

Send your profile with /plan, for example:
/plan name=Ann age=30 goal="Muscle Gain" level=Beginner location=Gym

Type /help to see every field.`

	MsgHelp = `🤖 Commands:

/plan key=value ... - generate a plan
/retry - repeat the last request
/images - pictures for the plan's exercises and meals
/voice - listen to your motivation and workout
/cancel - forget the current plan
/help - show this message

Profile fields:
name, age and goal are required.
gender: Male, Female, Other
height (cm), weight (kg)
goal: Weight Loss, Muscle Gain, Endurance, Strength, Flexibility
level: Beginner, Intermediate, Advanced
location: Home, Gym, Outdoor
diet: Veg, Non-Veg, Vegan, Keto
stress: Low, Moderate, High
medical: free text

Quote values with spaces: goal="Weight Loss"`

	MsgGenerating   = `⏳ Building your plan. This can take up to a minute.`
	MsgAlreadyBusy  = `⏳ Your plan is still being generated. Please wait.`
	MsgNoPlan       = `📋 There is no plan yet. Send /plan first.`
	MsgImagesIntro  = `🖼 Generating pictures for your plan...`
	MsgCancelled    = `👋 Your plan was discarded. Send /plan to start again.`
	MsgNothingToRun = `📋 There is nothing to retry. Send /plan first.`

	ErrGeneric       = `❌ Something went wrong. Please try again or send /start`
	ErrUnknownCmd    = `❌ Unknown command. Use /help`
	ErrRetryDisabled = `🔑 Retrying will not help until the service is configured. Fix the configuration, then send /plan again.`
	ErrTimeout       = `❌ The operation took too long. Please try again.`
	ErrRateLimited   = `⚠️ Too many requests. Please wait a little.`
	ErrRateLimited2  = `⚠️ Request limit exceeded. Wait about 30 seconds before trying again.`
	ErrRateLimited3  = `🛑 You are sending requests too often. Please wait a minute.`
)

// RenderPlan formats the four plan sections.
func RenderPlan(plan *entity.Plan) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "💪 WORKOUT PLAN\n%s\n\n", plan.Workout)
	fmt.Fprintf(&sb, "🥗 DIET PLAN\n%s\n\n", plan.Diet)
	fmt.Fprintf(&sb, "💡 TIPS & MOTIVATION\n%s\n\n", plan.Tips)
	fmt.Fprintf(&sb, "🔥 DAILY MOTIVATION\n%s", plan.Motivation)

	return sb.String()
}

// RenderError formats a classified failure. Setup failures point at configuration
// instead of inviting a retry.
func RenderError(appErr *entity.AppError) string {
	var sb strings.Builder

	switch appErr.Outcome() {
	case entity.OutcomeSetupRequired:
		sb.WriteString("🔑 ")
	case entity.OutcomeBadInput:
		sb.WriteString("✏️ ")
	default:
		sb.WriteString("❌ ")
	}
	sb.WriteString(appErr.Message)

	if appErr.Details != "" && appErr.Outcome() == entity.OutcomeBadInput {
		sb.WriteString("\n")
		sb.WriteString(appErr.Details)
	}

	switch appErr.Outcome() {
	case entity.OutcomeRetryable:
		sb.WriteString("\n\nSend /retry to try again.")
	case entity.OutcomeBadInput:
		sb.WriteString("\n\nSee /help for the profile fields.")
	}

	return sb.String()
}

// RenderPlaceholders lists the items that have no generated picture.
func RenderPlaceholders(result entity.AssetResult) string {
	var names []string
	for name, artifact := range result {
		if artifact.IsPlaceholder() {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)

	return "No picture for: " + strings.Join(names, ", ")
}

// SplitMessage cuts text into chunks Telegram accepts, preferring line breaks.
func SplitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, strings.TrimRight(string(runes[:cut]), "\n"))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}

	return chunks
}
