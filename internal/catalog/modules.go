package catalog

import "FlowAcademy/internal/models"

var courseModules = []models.Module{
	{
		ID:    "mod-1",
		Title: "Module 1: N8N Fundamentals & Setup",
		Lessons: []models.Lesson{
			{ID: "l1-1", Title: "Introduction to N8N"},
			{ID: "l1-2", Title: "Setting Up Your N8N Instance"},
			{ID: "l1-3", Title: "Exploring the N8N Editor UI"},
		},
	},
	{
		ID:    "mod-2",
		Title: "Module 2: Basic Nodes & Data Flow",
		Lessons: []models.Lesson{
			{ID: "l2-1", Title: "Understanding Nodes and Connections"},
			{ID: "l2-2", Title: "Working with the Start Node"},
			{ID: "l2-3", Title: "Data Flow and JSON Objects"},
			{ID: "l2-4", Title: "Using the Set Node"},
		},
	},
	{
		ID:    "mod-3",
		Title: "Module 3: API Integration & HTTP Requests",
		Lessons: []models.Lesson{
			{ID: "l3-1", Title: "Introduction to APIs"},
			{ID: "l3-2", Title: "Making GET Requests with HTTP Node"},
			{ID: "l3-3", Title: "POST, PUT, DELETE Requests"},
			{ID: "l3-4", Title: "Handling API Authentication"},
		},
	},
	{
		ID:    "mod-4",
		Title: "Module 4: Workflow Logic & Control Flow",
		Lessons: []models.Lesson{
			{ID: "l4-1", Title: "IF Node for Conditional Logic"},
			{ID: "l4-2", Title: "Switch Node for Multi-path Logic"},
			{ID: "l4-3", Title: "Merge Node for Combining Data"},
			{ID: "l4-4", Title: "Error Handling Workflows"},
		},
	},
	{
		ID:    "mod-5",
		Title: "Module 5: Advanced Data Manipulation",
		Lessons: []models.Lesson{
			{ID: "l5-1", Title: "Using Expressions for Dynamic Data"},
			{ID: "l5-2", Title: "Code Node for Custom JavaScript"},
			{ID: "l5-3", Title: "Looping Over Items"},
		},
	},
	{
		ID:    "mod-6",
		Title: "Module 6: Authentication & Security",
		Lessons: []models.Lesson{
			{ID: "l6-1", Title: "Managing Credentials"},
			{ID: "l6-2", Title: "OAuth2 and API Keys"},
			{ID: "l6-3", Title: "Security Best Practices"},
		},
	},
	{
		ID:    "mod-7",
		Title: "Module 7: Webhooks, Triggers & Real-time",
		Lessons: []models.Lesson{
			{ID: "l7-1", Title: "Creating Webhook Triggers"},
			{ID: "l7-2", Title: "Cron Node for Scheduled Workflows"},
			{ID: "l7-3", Title: "Real-time Customer Onboarding"},
		},
	},
	{
		ID:    "mod-8",
		Title: "Module 8: Advanced & Production",
		Lessons: []models.Lesson{
			{ID: "l8-1", Title: "Sub-Workflows and Reusability"},
			{ID: "l8-2", Title: "Production Deployment Strategies"},
			{ID: "l8-3", Title: "Monitoring and Optimization"},
		},
	},
}
