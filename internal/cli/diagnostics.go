package cli

import (
	"go.uber.org/zap"

	"infa2sql/internal/diagnostic"
)

// logDiagnostics reports conversion findings, one log line each.
func logDiagnostics(logger *zap.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := []zap.Field{
			zap.String("code", d.Code),
			zap.String("mapping", d.Mapping),
		}

		if d.Column != "" {
			fields = append(fields, zap.String("column", d.Column))
		}

		if len(d.Suggestions) > 0 {
			fields = append(fields, zap.Strings("did_you_mean", d.Suggestions))
		}

		switch d.Severity {
		case diagnostic.SeverityError:
			logger.Error(d.Message, fields...)
		case diagnostic.SeverityWarning:
			logger.Warn(d.Message, fields...)
		default:
			logger.Info(d.Message, fields...)
		}
	}
}
