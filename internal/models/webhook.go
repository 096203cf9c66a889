package models

// RowUpdateRequest is the body of a sheet row-change webhook. RowIndex is
// opaque and used only for logging.
type RowUpdateRequest struct {
	NewRowData map[string]any `json:"new_row_data" binding:"required"`
	RowIndex   any            `json:"row_index"`
}

// BroadcastResult tallies per-record outcomes of one bulk run.
type BroadcastResult struct {
	Processed int
	Sent      int
	Failed    int
}

// BroadcastResponse is the aggregate response of the bulk route. The outer
// status code is always 200; per-record failures are reported here.
type BroadcastResponse struct {
	Status                  string `json:"status"`
	Message                 string `json:"message"`
	RecordsProcessed        int    `json:"records_processed"`
	RecordsSentSuccessfully int    `json:"records_sent_successfully"`
	RecordsFailed           int    `json:"records_failed"`
}
