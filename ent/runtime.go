// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dnorman/learnchain/ent/llmrequestevent"
	"github.com/dnorman/learnchain/ent/quizanswerevent"
	"github.com/dnorman/learnchain/ent/reviewsessionevent"
	"github.com/dnorman/learnchain/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizanswereventMixin := schema.QuizAnswerEvent{}.Mixin()
	quizanswereventMixinFields0 := quizanswereventMixin[0].Fields()
	_ = quizanswereventMixinFields0
	quizanswereventFields := schema.QuizAnswerEvent{}.Fields()
	_ = quizanswereventFields
	// quizanswereventDescTimestamp is the schema descriptor for timestamp field.
	quizanswereventDescTimestamp := quizanswereventMixinFields0[1].Descriptor()
	// quizanswerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizanswerevent.DefaultTimestamp = quizanswereventDescTimestamp.Default.(func() time.Time)
	// quizanswereventDescSessionID is the schema descriptor for session_id field.
	quizanswereventDescSessionID := quizanswereventFields[0].Descriptor()
	// quizanswerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizanswerevent.SessionIDValidator = quizanswereventDescSessionID.Validators[0].(func(string) error)
	// quizanswereventDescConceptFingerprint is the schema descriptor for concept_fingerprint field.
	quizanswereventDescConceptFingerprint := quizanswereventFields[1].Descriptor()
	// quizanswerevent.ConceptFingerprintValidator is a validator for the "concept_fingerprint" field. It is called by the builders before save.
	quizanswerevent.ConceptFingerprintValidator = quizanswereventDescConceptFingerprint.Validators[0].(func(string) error)
	// quizanswereventDescQuestionText is the schema descriptor for question_text field.
	quizanswereventDescQuestionText := quizanswereventFields[2].Descriptor()
	// quizanswerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	quizanswerevent.QuestionTextValidator = quizanswereventDescQuestionText.Validators[0].(func(string) error)
	// quizanswereventDescLanguage is the schema descriptor for language field.
	quizanswereventDescLanguage := quizanswereventFields[3].Descriptor()
	// quizanswerevent.DefaultLanguage holds the default value on creation for the language field.
	quizanswerevent.DefaultLanguage = quizanswereventDescLanguage.Default.(string)
	// quizanswereventDescDifficulty is the schema descriptor for difficulty field.
	quizanswereventDescDifficulty := quizanswereventFields[4].Descriptor()
	// quizanswerevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	quizanswerevent.DefaultDifficulty = quizanswereventDescDifficulty.Default.(int)
	// quizanswereventDescFirstAttempt is the schema descriptor for first_attempt field.
	quizanswereventDescFirstAttempt := quizanswereventFields[8].Descriptor()
	// quizanswerevent.DefaultFirstAttempt holds the default value on creation for the first_attempt field.
	quizanswerevent.DefaultFirstAttempt = quizanswereventDescFirstAttempt.Default.(bool)
	// quizanswereventDescTimeMs is the schema descriptor for time_ms field.
	quizanswereventDescTimeMs := quizanswereventFields[9].Descriptor()
	// quizanswerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	quizanswerevent.DefaultTimeMs = quizanswereventDescTimeMs.Default.(int)
	reviewsessioneventMixin := schema.ReviewSessionEvent{}.Mixin()
	reviewsessioneventMixinFields0 := reviewsessioneventMixin[0].Fields()
	_ = reviewsessioneventMixinFields0
	reviewsessioneventFields := schema.ReviewSessionEvent{}.Fields()
	_ = reviewsessioneventFields
	// reviewsessioneventDescTimestamp is the schema descriptor for timestamp field.
	reviewsessioneventDescTimestamp := reviewsessioneventMixinFields0[1].Descriptor()
	// reviewsessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewsessionevent.DefaultTimestamp = reviewsessioneventDescTimestamp.Default.(func() time.Time)
	// reviewsessioneventDescSessionID is the schema descriptor for session_id field.
	reviewsessioneventDescSessionID := reviewsessioneventFields[0].Descriptor()
	// reviewsessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewsessionevent.SessionIDValidator = reviewsessioneventDescSessionID.Validators[0].(func(string) error)
	// reviewsessioneventDescAction is the schema descriptor for action field.
	reviewsessioneventDescAction := reviewsessioneventFields[1].Descriptor()
	// reviewsessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	reviewsessionevent.ActionValidator = reviewsessioneventDescAction.Validators[0].(func(string) error)
	// reviewsessioneventDescTool is the schema descriptor for tool field.
	reviewsessioneventDescTool := reviewsessioneventFields[2].Descriptor()
	// reviewsessionevent.DefaultTool holds the default value on creation for the tool field.
	reviewsessionevent.DefaultTool = reviewsessioneventDescTool.Default.(string)
	// reviewsessioneventDescSourcePath is the schema descriptor for source_path field.
	reviewsessioneventDescSourcePath := reviewsessioneventFields[3].Descriptor()
	// reviewsessionevent.DefaultSourcePath holds the default value on creation for the source_path field.
	reviewsessionevent.DefaultSourcePath = reviewsessioneventDescSourcePath.Default.(string)
	// reviewsessioneventDescConceptCount is the schema descriptor for concept_count field.
	reviewsessioneventDescConceptCount := reviewsessioneventFields[4].Descriptor()
	// reviewsessionevent.DefaultConceptCount holds the default value on creation for the concept_count field.
	reviewsessionevent.DefaultConceptCount = reviewsessioneventDescConceptCount.Default.(int)
	// reviewsessioneventDescQuizzesGenerated is the schema descriptor for quizzes_generated field.
	reviewsessioneventDescQuizzesGenerated := reviewsessioneventFields[5].Descriptor()
	// reviewsessionevent.DefaultQuizzesGenerated holds the default value on creation for the quizzes_generated field.
	reviewsessionevent.DefaultQuizzesGenerated = reviewsessioneventDescQuizzesGenerated.Default.(int)
	// reviewsessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	reviewsessioneventDescCorrectAnswers := reviewsessioneventFields[6].Descriptor()
	// reviewsessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	reviewsessionevent.DefaultCorrectAnswers = reviewsessioneventDescCorrectAnswers.Default.(int)
	// reviewsessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	reviewsessioneventDescDurationSecs := reviewsessioneventFields[7].Descriptor()
	// reviewsessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	reviewsessionevent.DefaultDurationSecs = reviewsessioneventDescDurationSecs.Default.(int)
}
