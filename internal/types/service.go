package types

// Category represents service categories
type Category string

const (
	CategoryMath Category = "math"
)

// Service represents a service definition
type Service struct {
	ID           string   `json:"id" yaml:"id" toml:"id"`
	Name         string   `json:"name" yaml:"name" toml:"name"`
	Description  string   `json:"description" yaml:"description" toml:"description"`
	Category     Category `json:"category" yaml:"category" toml:"category"`
	Capabilities []string `json:"capabilities" yaml:"capabilities" toml:"capabilities"`
	Tools        []Tool   `json:"tools" yaml:"tools" toml:"tools"`
}

// Tool represents a service tool
type Tool struct {
	ID          string      `json:"id" yaml:"id" toml:"id"`
	Name        string      `json:"name" yaml:"name" toml:"name"`
	Description string      `json:"description" yaml:"description" toml:"description"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters" toml:"parameters"`
	Returns     string      `json:"returns" yaml:"returns" toml:"returns"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Type        string `json:"type" yaml:"type" toml:"type"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Required    bool   `json:"required" yaml:"required" toml:"required"`
}

// Context provides execution context for services
type Context struct {
	RequestID *string `json:"request_id,omitempty"`
}

// Result represents a service execution result
type Result struct {
	Success bool                   `json:"success" yaml:"success" toml:"success"`
	Data    map[string]interface{} `json:"data,omitempty" yaml:"data,omitempty" toml:"data,omitempty"`
	Error   *string                `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}
