package confidence

// ErrFmtInsufficientConfidence formats the overspend error with remaining and requested points
const ErrFmtInsufficientConfidence = "%s: %d remaining, %d requested"
