package catalog

// DefaultCategories is the built-in category mapping for the skill
// registry. A categories.yaml in the registry root overrides it; see
// LoadCategories.
var DefaultCategories = []Category{
	{
		Label: "Frontend Development / 前端开发",
		Skills: []string{
			"react-best-practices", "web-design-guidelines", "implement-frontend",
			"design-ui", "audit-ui", "ui-animation", "nextjs", "react",
			"tailwind-v4-shadcn", "tailwind-patterns", "shadcn", "tanstack-query",
			"tanstack-router", "tanstack-table", "zustand-state-management",
			"react-hook-form-zod", "motion", "mui", "ui-ux-pro-max",
			"vercel-react-native-skills", "vercel-react-best-practices",
			"vercel-composition-patterns",
		},
	},
	{
		Label: "Backend Development / 后端开发",
		Skills: []string{
			"go-service-standards", "express", "nodejs", "prisma", "hono-routing",
			"python-patterns", "database-design", "docker-expert",
			"database-schema-designer",
		},
	},
	{
		Label:  "Authentication / 身份验证",
		Skills: []string{"clerk-auth", "better-auth"},
	},
	{
		Label:  "AI & SDK / AI 与 SDK",
		Skills: []string{"ai-sdk-core", "ai-sdk-ui"},
	},
	{
		Label: "Superpowers Workflow / Superpowers 工作流",
		Skills: []string{
			"using-superpowers", "brainstorming", "writing-plans", "executing-plans",
			"subagent-driven-development", "test-driven-development",
			"systematic-debugging", "verification-before-completion",
			"requesting-code-review", "receiving-code-review", "using-git-worktrees",
			"finishing-a-development-branch", "dispatching-parallel-agents",
			"writing-skills",
		},
	},
	{
		Label: "DevTools / 开发工具",
		Skills: []string{
			"plan-feature", "define-architecture", "review-pr", "optimise-seo",
			"developer-toolbox", "playwright-local", "webapp-testing", "mcp-builder",
			"clean-code", "code-review-checklist", "performance-profiling",
			"git-pushing", "api-security-best-practices", "typescript-expert",
			"github-actions-templates", "audit-website", "skill-creator",
		},
	},
	{
		Label: "Documents / 文档处理",
		Skills: []string{
			"docx", "pdf", "pptx", "xlsx", "humanizer", "doc-coauthoring",
			"internal-comms",
		},
	},
	{
		Label: "Creative & Design / 创意与设计",
		Skills: []string{
			"canvas-design", "algorithmic-art", "theme-factory", "frontend-design",
			"brand-guidelines", "slack-gif-creator", "web-artifacts-builder",
		},
	},
	{
		Label:  "General / 通用",
		Skills: []string{"chinese-default", "template-skill"},
	},
}
