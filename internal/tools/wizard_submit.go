package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/energywiz/internal/sessions"
	"github.com/HendryAvila/energywiz/internal/wizard"
)

// SubmitTool handles the energy_wizard_submit MCP tool.
// It is the workhorse of the wizard: validates one step's input,
// records it and advances to the next step.
type SubmitTool struct {
	store sessions.Store
}

// NewSubmitTool creates a SubmitTool with the given session store.
func NewSubmitTool(store sessions.Store) *SubmitTool {
	return &SubmitTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *SubmitTool) Definition() mcp.Tool {
	return mcp.NewTool("energy_wizard_submit",
		mcp.WithDescription(
			"Submit the answer for the current wizard step and advance. "+
				"Step 1 takes `name` and `age`, step 2 takes `city` and `area`, "+
				"steps 3-7 take a single `choice` (housing type, bedroom configuration, "+
				"then yes/no for AC, fridge and washing machine). Submitting step 8 "+
				"recalculates the estimate. Invalid input is rejected and the step is unchanged.",
		),
		withSessionID(),
		mcp.WithNumber("step",
			mcp.Required(),
			mcp.Description("The step being answered (1-8). Must match the session's current step."),
		),
		mcp.WithString("name",
			mcp.Description("Step 1: the user's name."),
		),
		mcp.WithNumber("age",
			mcp.Description("Step 1: the user's age, 1-120."),
		),
		mcp.WithString("city",
			mcp.Description("Step 2: city."),
		),
		mcp.WithString("area",
			mcp.Description("Step 2: area or neighbourhood."),
		),
		mcp.WithString("choice",
			mcp.Description("Steps 3-7: `flat`/`tenement`, `1bhk`/`2bhk`/`3bhk`, or `yes`/`no`."),
		),
	)
}

// Handle processes the energy_wizard_submit tool call.
func (t *SubmitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireSessionID(req)
	if errResult != nil {
		return errResult, nil
	}

	rawStep, stepText, ok := intArg(req, "step")
	if !ok {
		return validationFailure(wizard.NotInteger(0, "step", stepText)), nil
	}
	step := wizard.Step(rawStep)

	in := wizard.Input{
		Name:   req.GetString("name", ""),
		City:   req.GetString("city", ""),
		Area:   req.GetString("area", ""),
		Choice: choiceArg(req, "choice"),
	}
	if step == wizard.StepPersonal {
		age, ageText, ok := intArg(req, "age")
		if !ok {
			return validationFailure(wizard.NotInteger(wizard.StepPersonal, "age", ageText)), nil
		}
		in.Age = age
	}

	sess, err := t.store.Update(ctx, id, func(st *wizard.State) error {
		return st.Submit(step, in)
	})

	var verr *wizard.ValidationError
	if errors.As(err, &verr) {
		return validationFailure(verr), nil
	}
	if err != nil {
		return sessionFailure(id, err)
	}

	if sess.State.Complete() {
		return mcp.NewToolResultText(renderPrompt(sess.State)), nil
	}

	def, _ := wizard.Lookup(step)
	response := fmt.Sprintf(
		"# Step Completed: %s\n\n"+
			"## Progress\n\n"+
			"%s\n"+
			"%s",
		def.Title,
		renderProgress(sess.State.Step()),
		renderPrompt(sess.State),
	)
	return mcp.NewToolResultText(response), nil
}

// validationFailure reports input the user can correct.
func validationFailure(verr *wizard.ValidationError) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf(
		"❌ %s\n\nThe session is unchanged. Ask again and resubmit.", verr.Error(),
	))
}
