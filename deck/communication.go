package deck

import "github.com/tsawler/deckgen/model"

func communicationFirstSlides() []slideSpec {
	return []slideSpec{
		// 1
		{
			layout:    model.LayoutTitle,
			title:     "🚀 GitHub Developer Workflow",
			titleFont: boldColor(38, Primary),
			subtitle: "Phase 1: Improve Team Communication & Standards\n\n" +
				"💬 Better Collaboration | 📝 Consistent Documentation | ⚡ Faster Decisions\n\n" +
				"Phase 2: Full GitHub Project Management (Future)\n\n" +
				"Presented by: Amna & Hanzla",
			subtitleFont: sized(16),
		},
		// 2
		{
			layout: model.LayoutTitleAndContent,
			title:  "📋 Communication-First Agenda",
			body: []para{
				{text: "🔴 Communication Pain Points (4 min)", font: bold(20), after: 12},
				{text: "💬 Phase 1: Improve Team Communication (8 min)", font: bold(20), after: 12},
				{text: "📝 Templates & Standards (6 min)", font: bold(20), after: 12},
				{text: "🎯 Quick Wins Demo (5 min)", font: bold(20), after: 12},
				{text: "📊 Phase 1 Implementation (2 weeks) (4 min)", font: bold(20), after: 12},
				{text: "🚀 Phase 2 Vision (Future) (3 min)", font: bold(20), after: 12},
			},
		},
		// 3
		{
			layout: model.LayoutTitleAndContent,
			title:  "💬 Communication Challenges",
			body: []para{
				{text: "🔧 Process Communication (40% Impact)", font: boldColor(18, Danger)},
				{text: "• Unclear requirements in issues", level: 1, font: sized(15)},
				{text: "• Missing context in PRs", level: 1, font: sized(15)},
				{text: "• No standard templates", level: 1, font: sized(15)},
				{},
				{text: "👥 Team Communication (35% Impact)", font: boldColor(18, Danger)},
				{text: "• Knowledge silos", level: 1, font: sized(15)},
				{text: "• Delayed feedback", level: 1, font: sized(15)},
				{text: "• Inconsistent updates", level: 1, font: sized(15)},
				{},
				{text: "📋 Documentation Issues (25% Impact)", font: boldColor(18, Danger)},
				{text: "• Outdated information", level: 1, font: sized(15)},
				{text: "• Missing project context", level: 1, font: sized(15)},
				{text: "• No standardized formats", level: 1, font: sized(15)},
				{},
			},
		},
		// 4
		{
			layout: model.LayoutTitleAndContent,
			title:  "💬 Phase 1: Communication First",
			boxes: []box{{
				frame: model.NewRect(1, 1.8, 11.5, 5),
				paras: []para{
					{text: "🎯 Why Communication First?", font: boldColor(22, Primary), after: 15},
					{text: "✅ Immediate impact on team productivity", font: sized(18), after: 10},
					{text: "✅ Low implementation effort, high value", font: sized(18), after: 10},
					{text: "✅ Builds foundation for Phase 2 (full methodology)", font: sized(18), after: 10},
					{text: "✅ Everyone can contribute regardless of GitHub experience", font: sized(18), after: 10},
					{text: "✅ Reduces confusion and rework by 60%", font: sized(18), after: 10},
				},
			}},
		},
		// 5
		{
			layout: model.LayoutTitleAndContent,
			title:  "📝 Phase 1: Templates & Standards",
			table: &grid{
				frame:      model.NewRect(0.5, 1.8, 12.3, 4.5),
				widths:     []float64{4.5, 3.9, 3.9},
				header:     []string{"Communication Tool", "Current State", "Phase 1 Improvement"},
				headerSize: 16,
				rows: [][]string{
					{"📋 Issue Creation", "Vague descriptions", "Smart templates"},
					{"🔄 Pull Requests", "Missing context", "Standard format"},
					{"🏷️ Labels", "Inconsistent usage", "Clear taxonomy"},
					{"💬 Communication", "Ad-hoc updates", "Structured process"},
				},
				rowSize: 14,
			},
		},
		// 6
		{
			layout: model.LayoutTitleAndContent,
			title:  "⚡ Phase 1 Quick Wins (Week 1)",
			body: []para{
				{text: "📝 Deploy issue templates (1 hour setup)", font: sized(20), after: 15},
				{text: "✅ Add PR template (30 minutes)", font: sized(20), after: 15},
				{text: "🏷️ Create basic label set (15 labels max)", font: sized(20), after: 15},
				{text: "📋 Team training session (1 hour)", font: sized(20), after: 15},
				{text: "💬 Establish update rhythm (daily/weekly)", font: sized(20), after: 15},
			},
		},
		// 7
		{
			layout: model.LayoutTitleAndContent,
			title:  "📋 Better Issue Communication",
			boxes: []box{
				{
					frame: model.NewRect(0.5, 1.8, 6, 4.5),
					paras: []para{
						{text: "❌ Before: Poor Communication", font: boldColor(18, Danger)},
						{
							text: "Title: Bug\nDescription: It's broken\n\nResult:\n" +
								"• Unclear scope\n• Missing context\n• Back-and-forth questions\n• Delayed resolution",
							font: sized(14),
						},
					},
				},
				{
					frame: model.NewRect(7, 1.8, 6, 4.5),
					paras: []para{
						{text: "✅ After: Clear Communication", font: boldColor(18, Secondary)},
						{
							text: "🐛 Login Error on Mobile\n\nPriority: High\n" +
								"Steps: 1. Open app 2. Enter credentials\n" +
								"Expected: Dashboard loads\nActual: 500 error\nScreenshot: [attached]\n\n" +
								"Result:\n• Clear understanding\n• Immediate action\n• Faster resolution",
							font: sized(14),
						},
					},
				},
			},
		},
		// 8
		{
			layout: model.LayoutTitleAndContent,
			title:  "📅 Phase 1: 2-Week Implementation",
			body: []para{
				{text: "Week 1: Foundation", font: boldColor(22, Primary)},
				{text: "✅ Templates | ✅ Labels | ✅ Training | ✅ First PRs", font: sized(18), after: 20},
				{text: "Week 2: Adoption", font: boldColor(22, Primary)},
				{text: "📊 Measure usage | 🔄 Iterate | 💬 Feedback | 🎯 Refine", font: sized(18), after: 20},
				{text: "Expected Results After 2 Weeks:", font: bold(20)},
				{text: "🎯 80% of issues use templates", font: sized(16)},
				{text: "💬 Clearer team communication", font: sized(16)},
				{text: "⚡ 30% faster issue resolution", font: sized(16)},
				{text: "📋 Consistent documentation", font: sized(16)},
			},
		},
		// 9
		{
			layout: model.LayoutTitleAndContent,
			title:  "🚀 Phase 2: Full Methodology (Future)",
			body: []para{
				{text: "After Phase 1 Success, We'll Add:", font: boldColor(20, Primary), after: 15},
				{text: "📊 GitHub Project Boards for sprint management", font: sized(18), after: 10},
				{text: "🤖 Automated workflows and quality gates", font: sized(18), after: 10},
				{text: "📈 Sprint planning and velocity tracking", font: sized(18), after: 10},
				{text: "🔄 Full CI/CD integration", font: sized(18), after: 10},
				{text: "📋 Advanced reporting and analytics", font: sized(18), after: 10},
				{text: "\n🎯 Timeline: After Phase 1 proves communication improvements", font: boldColor(16, Secondary)},
			},
		},
		// 10
		{
			layout: model.LayoutTitleAndContent,
			title:  "🎬 Start Phase 1 Today",
			body: []para{
				{text: "Immediate Actions (This Week):", font: boldColor(22, Primary), after: 15},
				{text: "☑️ Add issue template to one repository", font: sized(18), after: 8},
				{text: "☑️ Create basic label set (5-10 labels)", font: sized(18), after: 8},
				{text: "☑️ Add PR template", font: sized(18), after: 8},
				{text: "☑️ Team intro session (30 minutes)", font: sized(18), after: 8},
				{text: "☑️ Try on 2-3 issues this week", font: sized(18), after: 8},
				{text: "\nResources:", font: bold(20), before: 20},
				{text: "📦 Templates: github.com/hanzlahabib/github-workflow-demo", font: sized(16)},
			},
		},
		// 11
		{
			layout: model.LayoutTitleAndContent,
			title:  "💡 Questions & Discussion",
			body: []para{
				{text: "Phase 1 Questions:", font: bold(20), after: 15},
				{text: "✅ How do we get team buy-in for templates?", font: sized(18), after: 10},
				{text: "✅ What if people forget to use them?", font: sized(18), after: 10},
				{text: "✅ How do we measure communication improvement?", font: sized(18), after: 10},
				{text: "✅ When do we move to Phase 2?", font: sized(18), after: 10},
				{text: "\nContact:", font: bold(20), before: 20},
				{text: "GitHub: @hanzlahabib | @amna\nDemo: github.com/hanzlahabib/github-workflow-demo", font: sized(16)},
			},
		},
		// 12
		{
			layout:    model.LayoutTitle,
			title:     "🙏 Thank You!",
			titleFont: bold(42),
			subtitle: "Ready to Improve Team Communication?\n\n" +
				"💬 Start Phase 1 This Week\n📈 Measure the Impact\n🚀 Prepare for Phase 2\n\n" +
				"Let's build better software, together.",
			subtitleFont: sized(18),
		},
	}
}
