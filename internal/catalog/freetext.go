package catalog

// Free-response question identifiers of the freetext module.
const (
	QuestionPassions = "ft-passions"
	QuestionFeedback = "ft-feedback"
	QuestionDreams   = "ft-dreams"
	QuestionThreads  = "ft-threads"
	QuestionAnything = "ft-anything"
)
