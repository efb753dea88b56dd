package gemini

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/uidoc"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements uidoc.Asker at compile time.
var _ uidoc.Asker = (*Asker)(nil)

// Asker implements uidoc.Asker using Google Gemini.
type Asker struct {
	client     *genai.Client
	components uidoc.ComponentService
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, components uidoc.ComponentService) *Asker {
	return &Asker{client: client, components: components}
}

// Ask answers a natural language question about a component's documentation.
func (a *Asker) Ask(ctx context.Context, name, question string) (string, error) {
	if name == "" {
		return "", uidoc.Errorf(uidoc.EINVALID, "component name required")
	}
	if question == "" {
		return "", uidoc.Errorf(uidoc.EINVALID, "question required")
	}

	detail, err := a.components.GetComponentDetails(ctx, name)
	if err != nil {
		return "", err
	}
	examples, err := a.components.GetComponentExamples(ctx, name)
	if err != nil {
		return "", err
	}

	prompt := BuildUserPrompt(detail, examples, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", uidoc.Errorf(uidoc.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about UI component documentation. Answer based only on the documentation provided. If the answer is not in the documentation, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the component record,
// its examples, and the question.
func BuildUserPrompt(detail *uidoc.ComponentDetail, examples []*uidoc.Example, question string) string {
	var sb strings.Builder
	sb.WriteString("<component>\n")
	fmt.Fprintf(&sb, "<name>%s</name>\n", detail.Name)
	fmt.Fprintf(&sb, "<description>%s</description>\n", detail.Description)
	fmt.Fprintf(&sb, "<installation>%s</installation>\n", detail.Installation)
	fmt.Fprintf(&sb, "<usage>%s</usage>\n", detail.Usage)
	if len(detail.Props) > 0 {
		// Sort for a stable prompt.
		names := make([]string, 0, len(detail.Props))
		for name := range detail.Props {
			names = append(names, name)
		}
		sort.Strings(names)
		sb.WriteString("<variants>\n")
		for _, name := range names {
			fmt.Fprintf(&sb, "<variant><name>%s</name><description>%s</description></variant>\n", name, detail.Props[name].Description)
		}
		sb.WriteString("</variants>\n")
	}
	sb.WriteString("</component>\n")

	if len(examples) > 0 {
		sb.WriteString("<examples>\n")
		for i, example := range examples {
			sb.WriteString("<example>\n")
			fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
			fmt.Fprintf(&sb, "<title>%s</title>\n", example.Title)
			fmt.Fprintf(&sb, "<code>%s</code>\n", example.Code)
			sb.WriteString("</example>\n")
		}
		sb.WriteString("</examples>\n")
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
