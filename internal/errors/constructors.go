package errors

// Convenience functions for common error patterns

// Config errors

func ConfigLoadFailed(path string, cause error) *ScriptDocError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration could not be loaded").
		WithContext("path", path)
}

func ConfigExists(path string) *ScriptDocError {
	return New(CategoryConfig, SeverityFatal, "configuration file already exists (use --force to overwrite)").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *ScriptDocError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Generation errors

func GenerationFailed(stage string, cause error) *ScriptDocError {
	return Wrap(cause, CategoryBuild, SeverityFatal, "script reference generation failed").
		WithContext("stage", stage)
}

func FileSystemError(operation string, cause error) *ScriptDocError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "filesystem operation failed").
		WithContext("operation", operation)
}

// Internal errors

func InternalError(message string, cause error) *ScriptDocError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
