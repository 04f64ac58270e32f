package metadata

/** Definition for jobs. Results are sent on the channel, which holds one value. */
type JobStart func(params interface{}, results chan<- interface{}) error

/** Definition for completion of a job. */
type JobOnComplete func(results <-chan interface{})

/**
 * @brief Describes a job to be run.
 */
type JobTask struct {
	/** @brief A function to be invoked when the job starts. Required. */
	OnStart JobStart
	/** @brief A function to be invoked when the job successfully completes. Optional. */
	OnComplete JobOnComplete
	/** @brief A function to be invoked when the job fails. Optional. */
	OnFailure JobOnComplete
	/** @brief Invoked after OnComplete or OnFailure, whatever the outcome. Optional. */
	OnCompletionCallback func()
	/** @brief Data to be passed to the entry point upon execution. */
	InputParams interface{}
}
