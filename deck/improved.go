package deck

import "github.com/tsawler/deckgen/model"

// Both comparison slides place two 6.4in x 5.2in boxes side by side.
var (
	improvedLeftBox  = model.NewRect(0.3, 1.6, 6.4, 5.2)
	improvedRightBox = model.NewRect(6.9, 1.6, 6.4, 5.2)
)

func improvedSlides() []slideSpec {
	return []slideSpec{
		// 1
		{
			layout:    model.LayoutTitle,
			title:     "🚀 GitHub Developer Workflow",
			titleFont: boldColor(42, Primary),
			subtitle: "From Chaos to Clarity: Two-Phase Transformation\n\n" +
				"🎯 Phase 1: Improve Communication & Standards\n" +
				"🚀 Phase 2: Full GitHub Project & Agile Methodology\n\n" +
				"📈 60% Faster PR Cycles | 40% Fewer Bugs | 90% Team Satisfaction\n\n" +
				"Presented by: Amna & Hanzla",
			subtitleFont: sized(16),
		},
		// 2
		{
			layout: model.LayoutTitleAndContent,
			title:  "📋 Agenda",
			body: []para{
				{text: "🔴 Current Pain Points (5 min)", font: bold(17)},
				{text: "Identify workflow challenges", level: 1, font: sized(14), after: 8},
				{text: "🟡 Root Cause Analysis (3 min)", font: bold(17)},
				{text: "Understanding persistence", level: 1, font: sized(14), after: 8},
				{text: "🟢 Solution Architecture (10 min)", font: bold(17)},
				{text: "GitHub-based workflow system", level: 1, font: sized(14), after: 8},
				{text: "🎯 Live Demonstration (7 min)", font: bold(17)},
				{text: "See workflow in action", level: 1, font: sized(14), after: 8},
				{text: "📊 Implementation Roadmap (5 min)", font: bold(17)},
				{text: "30-day transformation plan", level: 1, font: sized(14), after: 8},
			},
		},
		// 3
		{
			layout: model.LayoutTitleAndContent,
			title:  "🚨 Current Challenges",
			body: []para{
				{text: "🔧 Process Issues (40% Impact)", font: boldColor(16, Danger)},
				{text: "• Split Project Management - Multiple tools", level: 1, font: sized(13)},
				{text: "• Inconsistent Formats - 30+ min/PR overhead", level: 1, font: sized(13)},
				{text: "• Unclear Sprint Boundaries - 25% scope creep", level: 1, font: sized(13)},
				{},
				{text: "👥 People Issues (35% Impact)", font: boldColor(16, Danger)},
				{text: "• Knowledge Gap - Single points of failure", level: 1, font: sized(13)},
				{text: "• Poor Communication - Delayed decisions", level: 1, font: sized(13)},
				{text: "• Review Quality vs Delay - 3-day PR lifecycle", level: 1, font: sized(13)},
				{},
				{text: "🛠️ Technical Debt (25% Impact)", font: boldColor(16, Danger)},
				{text: "• Production Bugs - Missing quality gates", level: 1, font: sized(13)},
				{text: "• Outdated Docs - 60% onboarding confusion", level: 1, font: sized(13)},
				{text: "• Notification Chaos - Important items missed", level: 1, font: sized(13)},
				{},
			},
		},
		// 4
		{
			layout: model.LayoutTitleAndContent,
			title:  "🔄 From Chaos to Clarity",
			boxes: []box{
				{
					frame: improvedLeftBox,
					paras: []para{
						{text: "😰 Before (Chaos)", font: boldColor(18, Danger)},
						{text: "• 5+ tools for project management", font: sized(15), after: 4},
						{text: "• 3-day PR review cycle", font: sized(15), after: 4},
						{text: "• 40% PRs missing context", font: sized(15), after: 4},
						{text: "• Weekly production bugs", font: sized(15), after: 4},
						{text: "• 60% sprint completion rate", font: sized(15), after: 4},
					},
				},
				{
					frame: improvedRightBox,
					paras: []para{
						{text: "🎯 After (Clarity)", font: boldColor(18, Secondary)},
						{text: "✅ Single GitHub workspace", font: sized(15), after: 4},
						{text: "✅ 4-hour PR review cycle", font: sized(15), after: 4},
						{text: "✅ 100% PRs with templates", font: sized(15), after: 4},
						{text: "✅ 90% bug reduction", font: sized(15), after: 4},
						{text: "✅ 92% sprint completion rate", font: sized(15), after: 4},
					},
				},
			},
		},
		// 5
		{
			layout: model.LayoutTitleAndContent,
			title:  "💡 Solution Architecture",
			table: &grid{
				frame:      model.NewRect(0.3, 1.6, 12.7, 4.8),
				widths:     []float64{4.2, 2.8, 2.8, 2.9},
				header:     []string{"Component", "Impact", "Effort", "Timeline"},
				headerSize: 15,
				rows: [][]string{
					{"📊 GitHub Project Boards", "⭐⭐⭐ High", "Low", "Week 1"},
					{"📝 Issue Templates", "⭐⭐⭐ High", "Low", "Week 1"},
					{"✅ PR Templates", "⭐⭐⭐ High", "Low", "Week 1"},
					{"🤖 GitHub Actions", "⭐⭐⭐ High", "Medium", "Week 2"},
					{"🏷️ Label Taxonomy", "⭐⭐ Medium", "Low", "Week 1"},
				},
				rowSize: 13,
			},
		},
		// 6
		{
			layout: model.LayoutTitleAndContent,
			title:  "⚙️ Automated Workflow",
			body: []para{
				{text: "📝 Issue Created → Template enforced", font: sized(16), after: 8},
				{text: "🏷️ Auto-labeled → Type & Priority assigned", font: sized(16), after: 8},
				{text: "📊 Added to Board → Sprint assigned automatically", font: sized(16), after: 8},
				{text: "🌿 Branch Created → Follows naming convention", font: sized(16), after: 8},
				{text: "🔄 PR Opened → Template applied, checks triggered", font: sized(16), after: 8},
				{text: "✅ Auto-checks → Quality gates enforced", font: sized(16), after: 8},
				{text: "🚀 Merged → Automatic deployment", font: sized(16), after: 8},
			},
		},
		// 7
		{
			layout: model.LayoutTitleAndContent,
			title:  "🏷️ Intelligent Label Taxonomy",
			body: []para{
				{text: "Type Labels (One Required):", font: bold(17)},
				{text: "🟦 type: feature   🟥 type: bug   🟨 type: task", font: sized(15), after: 15},
				{text: "Priority Matrix:", font: bold(17)},
				{text: "🔴 critical   🟠 high   🟡 medium   🟢 low", font: sized(15), after: 15},
				{text: "Workflow Status (Auto-updated):", font: bold(17)},
				{text: "📋 backlog → 📝 todo → 🏃 in-progress", font: sized(15)},
				{text: "🚫 blocked → 👀 review → ✅ done", font: sized(15)},
			},
		},
		// 8
		{
			layout: model.LayoutTitleAndContent,
			title:  "🚀 30-Day Implementation Plan",
			body: []para{
				{text: "Week 1: Foundation", font: boldColor(18, Primary)},
				{text: "✅ Deploy templates | ✅ Configure labels | ✅ Team training", font: sized(15), after: 12},
				{text: "Week 2: Automation", font: boldColor(18, Primary)},
				{text: "⚙️ GitHub Actions | 📊 Project boards | 🔗 Integrations", font: sized(15), after: 12},
				{text: "Week 3: Integration", font: boldColor(18, Primary)},
				{text: "💬 Slack notifications | 📈 Analytics dashboard", font: sized(15), after: 12},
				{text: "Week 4: Optimization", font: boldColor(18, Primary)},
				{text: "🎯 Refine workflows | 📊 Measure success | 🚀 Scale", font: sized(15), after: 12},
			},
		},
		// 9
		{
			layout: model.LayoutTitleAndContent,
			title:  "📈 Measurable Success",
			boxes: []box{
				{
					frame: improvedLeftBox,
					paras: []para{
						{text: "📊 Before", font: bold(20)},
						{text: "PR Cycle: 3 days", font: sized(16), after: 8},
						{text: "Bug Rate: 15%", font: sized(16), after: 8},
						{text: "Sprint Success: 60%", font: sized(16), after: 8},
						{text: "Team Satisfaction: 6/10", font: sized(16), after: 8},
					},
				},
				{
					frame: improvedRightBox,
					paras: []para{
						{text: "🎯 After 30 Days", font: boldColor(20, Secondary)},
						{text: "PR Cycle: 4 hours ⬇️ 87%", font: sized(16), after: 8},
						{text: "Bug Rate: 3% ⬇️ 80%", font: sized(16), after: 8},
						{text: "Sprint Success: 92% ⬆️ 53%", font: sized(16), after: 8},
						{text: "Team Satisfaction: 9/10 ⬆️ 50%", font: sized(16), after: 8},
					},
				},
			},
		},
		// 10
		{
			layout: model.LayoutTitleAndContent,
			title:  "🎬 Immediate Actions",
			body: []para{
				{text: "Do Today:", font: boldColor(20, Primary)},
				{text: "☑️ Create your first project board", font: sized(17), after: 6},
				{text: "☑️ Import standard label set", font: sized(17), after: 6},
				{text: "☑️ Add issue templates", font: sized(17), after: 6},
				{text: "☑️ Enable branch protection", font: sized(17), after: 6},
				{text: "☑️ Configure PR template", font: sized(17), after: 6},
				{text: "\nResources:", font: bold(19)},
				{text: "📦 Templates: github.com/hanzlahabib/github-workflow-demo", font: sized(15)},
			},
		},
		// 11
		{
			layout: model.LayoutTitleAndContent,
			title:  "💡 Questions & Discussion",
			body: []para{
				{text: "Common Questions:", font: bold(19)},
				{text: "✅ How do we handle urgent hotfixes?", font: sized(16), after: 8},
				{text: "✅ What about multiple repositories?", font: sized(16), after: 8},
				{text: "✅ How to migrate existing issues?", font: sized(16), after: 8},
				{text: "✅ What's the actual ROI?", font: sized(16), after: 8},
				{text: "\nContact & Support:", font: bold(19), before: 15},
				{text: "GitHub: @hanzlahabib | @amna", font: sized(15)},
				{text: "Demo: github.com/hanzlahabib/github-workflow-demo", font: sized(15)},
				{text: "Office Hours: Thursdays 2-3 PM", font: sized(15)},
			},
		},
		// 12
		{
			layout:    model.LayoutTitle,
			title:     "🙏 Thank You!",
			titleFont: bold(46),
			subtitle: "Ready to Transform Your Workflow?\n\n" +
				"🚀 Start Your 30-Day Journey Today\n\n" +
				"Let's build better software, together.",
			subtitleFont: sized(20),
		},
	}
}
