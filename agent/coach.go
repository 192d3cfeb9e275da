package agent

import (
	"context"
	"fmt"

	journal "github.com/fanorama/stock-journal"
	"github.com/fanorama/stock-journal/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// BookSource loads the user's journal book and the latest known prices. The
// coach reads through it on every call so a session always sees fresh data.
type BookSource func() (*journal.Book, map[string]journal.Money, error)

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user keeps a stock trading journal: executed trades, written reflections on why
			each trade was made, and performance analytics over the closed positions.
			He is here to review his own trading: what worked, what did not, and what his
			own notes said at the time.

			Learn about the experts' skills from the Tools and ask them questions. They are at
			your service and keep context of your previous questions.

			Always check the journal first to understand what the user holds before answering.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the market analyst expert, grounded by search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a market analyst, aware of financial products, listed
		companies and the latest market news. Ask the Analyst whenever you need
		recent or grounding information about a ticker or a market.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a market analyst. You can search and find anything related to listed
			companies, markets and funds, and you leverage Google Search to ground your
			assertions. Relate the latest news to the user's request.
				`}}},
		},
	}
}

// NewCoach creates the trading coach expert. Its tools read the user's book
// through 'source'.
func NewCoach(source BookSource) *Expert {
	lib := []Function{summaryTool(source), positionsTool(source), reflectionsTool(source)}

	return &Expert{
		Name: "Coach",
		Description: `This is the trading Coach. He reads the user's trading journal:
		the executed trades, the journal reflections attached to them, and the
		performance analytics (realized and unrealized P&L, win rate, profit factor).
		Ask the Coach anything about the user's own trading record.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a trading coach reviewing the user's own journal. Use the available
				tools to read the portfolio summary, the open positions and the user's
				written reflections. Compare what the user wrote at execution time with the
				realized outcome, and point out patterns: repeated mistakes, good habits,
				oversized losses. Be direct and specific, quote the user's own notes.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func summaryTool(source BookSource) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary returns the portfolio dashboard: valuation, realized and
			unrealized P&L, and the performance metrics over all closed positions.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dashboard of the portfolio.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "Summary", func() (string, error) {
				b, prices, err := source()
				if err != nil {
					return "", err
				}
				snap, err := b.Snapshot(prices, journal.AllTime())
				if err != nil {
					// Degraded snapshots still render; the report names what failed.
					fmt.Println("warning:", err)
				}
				return renderer.SummaryMarkdown(b.Portfolio, snap), nil
			})
		},
	}
}

func positionsTool(source BookSource) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Positions",
			Description: `Positions returns the open positions with their unrealized P&L
			against the latest known prices.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the open positions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "Positions", func() (string, error) {
				b, prices, err := source()
				if err != nil {
					return "", err
				}
				snap, err := b.Snapshot(prices, journal.AllTime())
				if err != nil {
					fmt.Println("warning:", err)
				}
				return renderer.PositionsMarkdown(snap), nil
			})
		},
	}
}

func reflectionsTool(source BookSource) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Reflections",
			Description: `Reflections returns the full trade log with the user's written
			reflections attached to each trade, in chronological order.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted trade log with the user's journal notes.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "Reflections", func() (string, error) {
				b, _, err := source()
				if err != nil {
					return "", err
				}
				return renderer.TransactionsMarkdown(b), nil
			})
		},
	}
}

// respond wraps a tool body into a FunctionResponse.
func respond(id, name string, body func() (string, error)) *genai.FunctionResponse {
	out, err := body()
	if err != nil {
		return &genai.FunctionResponse{
			ID: id, Name: name,
			Response: map[string]any{"error": err.Error()},
		}
	}
	return &genai.FunctionResponse{
		ID: id, Name: name,
		Response: map[string]any{"output": out},
	}
}
