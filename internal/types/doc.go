// Package types provides the service definitions shared by providers and the CLI.
//
// Core Types:
//   - Service: Provider definition with its tools
//   - Tool: Tool definition (ID, parameters, return type)
//   - Parameter: Named tool input
//   - Context: Execution context for a tool call
//   - Result: Standard operation result
//
// Example Usage:
//
//	result := &types.Result{
//	    Success: true,
//	    Data:    map[string]interface{}{"result": 1.8540746773013719},
//	}
package types
