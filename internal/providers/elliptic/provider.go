package elliptic

import (
	"context"
	"fmt"

	core "github.com/GriffinCanCode/elliptic/internal/elliptic"
	"github.com/GriffinCanCode/elliptic/internal/types"
)

// Tool IDs.
const (
	ToolAGM      = "elliptic.agm"
	ToolK        = "elliptic.k"
	ToolEllipj   = "elliptic.ellipj"
	ToolJacobiSn = "elliptic.jacobi_sn"
)

// Provider exposes the elliptic functions as service tools
type Provider struct {
	ev *core.Evaluator
}

// NewProvider creates a provider evaluating through ev.
// A nil evaluator gets one without diagnostics.
func NewProvider(ev *core.Evaluator) *Provider {
	if ev == nil {
		ev = core.NewEvaluator()
	}
	return &Provider{ev: ev}
}

// Definition returns service metadata with all tools
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "elliptic",
		Name:        "Elliptic Functions Service",
		Description: "Arithmetic-geometric mean, complete elliptic integral K(m), Jacobi elliptic functions and the Jacobi sn/cn oscillator",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"agm",
			"elliptic-integral",
			"jacobi-elliptic",
			"oscillator",
		},
		Tools: p.tools(),
	}
}

func (p *Provider) tools() []types.Tool {
	return []types.Tool{
		{
			ID:          ToolAGM,
			Name:        "Arithmetic-Geometric Mean",
			Description: "Calculate AGM(a0, g0) of two non-negative numbers",
			Parameters: []types.Parameter{
				{Name: "a0", Type: "number", Description: "First value (>= 0)", Required: true},
				{Name: "g0", Type: "number", Description: "Second value (>= 0)", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          ToolK,
			Name:        "Complete Elliptic Integral K",
			Description: "Calculate K(m), the complete elliptic integral of the first kind",
			Parameters: []types.Parameter{
				{Name: "m", Type: "number", Description: "Parameter m = k² (< 1)", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          ToolEllipj,
			Name:        "Jacobi Elliptic Functions",
			Description: "Calculate sn, cn, dn and amplitude ph of u for parameter m",
			Parameters: []types.Parameter{
				{Name: "u", Type: "number", Description: "Argument", Required: true},
				{Name: "m", Type: "number", Description: "Parameter in [0, 1]", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          ToolJacobiSn,
			Name:        "Jacobi Oscillator",
			Description: "Sample the Jacobi sn/cn oscillator at a time for a given period",
			Parameters: []types.Parameter{
				{Name: "k", Type: "number", Description: "Shape parameter in (-1, 1)", Required: true},
				{Name: "time", Type: "number", Description: "Sample time", Required: true},
				{Name: "period", Type: "number", Description: "Oscillation period (non-zero)", Required: true},
			},
			Returns: "number",
		},
	}
}

// Execute routes to the requested tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch toolID {
	case ToolAGM:
		return p.agm(params)
	case ToolK:
		return p.completeK(params)
	case ToolEllipj:
		return p.ellipj(params)
	case ToolJacobiSn:
		return p.jacobiSn(params)
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) agm(params map[string]interface{}) (*types.Result, error) {
	in, err := numbers(params, "a0", "g0")
	if err != nil {
		return Failure(err.Error())
	}
	if in[0] < 0 || in[1] < 0 {
		return Failure("a0 and g0 must be non-negative")
	}

	result, err := p.ev.AGM(in[0], in[1])
	if core.IsFatal(err) {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{
		"result":    result,
		"converged": err == nil,
	})
}

func (p *Provider) completeK(params map[string]interface{}) (*types.Result, error) {
	in, err := numbers(params, "m")
	if err != nil {
		return Failure(err.Error())
	}
	if in[0] >= 1 {
		return Failure("m must be less than 1")
	}

	result, err := p.ev.EllipticK(in[0])
	if core.IsFatal(err) {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{
		"result":    result,
		"converged": err == nil,
	})
}

func (p *Provider) ellipj(params map[string]interface{}) (*types.Result, error) {
	in, err := numbers(params, "u", "m")
	if err != nil {
		return Failure(err.Error())
	}

	u, m := in[0], in[1]
	j, err := p.ev.Ellipj(u, m)
	if err != nil {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{
		"sn":       j.Sn,
		"cn":       j.Cn,
		"dn":       j.Dn,
		"ph":       j.Ph,
		"residual": j.Residual(m),
	})
}

func (p *Provider) jacobiSn(params map[string]interface{}) (*types.Result, error) {
	in, err := numbers(params, "k", "time", "period")
	if err != nil {
		return Failure(err.Error())
	}

	result, err := p.ev.JacobiSn(in[0], in[1], in[2])
	if core.IsFatal(err) {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{"result": result})
}
