// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "compiler invocation timed out",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "compiler": "clang",
//	        "snippet": snippetPath,
//	    },
//	)
package errors
