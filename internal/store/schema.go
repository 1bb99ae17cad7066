package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProgressColumns holds the columns for the "assessment_progress" table.
	ProgressColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "module", Type: field.TypeString},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "current_question_index", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ProgressTable holds the schema information for the "assessment_progress" table.
	ProgressTable = &schema.Table{
		Name:       "assessment_progress",
		Columns:    ProgressColumns,
		PrimaryKey: []*schema.Column{ProgressColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentprogress_user_id_module",
				Unique:  true,
				Columns: []*schema.Column{ProgressColumns[1], ProgressColumns[2]},
			},
			{
				Name:    "assessmentprogress_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProgressColumns[7]},
			},
		},
	}

	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "user_name", Type: field.TypeString, Default: ""},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "module_data", Type: field.TypeJSON},
		{Name: "prompt_version", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "generated_at", Type: field.TypeTime},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "report_user_id_generated_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[1], ReportsColumns[7]},
			},
		},
	}

	// LLMRequestEventsColumns holds the columns for the "llm_request_events" table.
	LLMRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// LLMRequestEventsTable holds the schema information for the "llm_request_events" table.
	LLMRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LLMRequestEventsColumns,
		PrimaryKey: []*schema.Column{LLMRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LLMRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LLMRequestEventsColumns[4]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProgressTable,
		ReportsTable,
		LLMRequestEventsTable,
	}
)
