// Package commentary turns a desk snapshot into the daily strategy note,
// written by a Gemini model playing the desk's chief strategist. The
// generator never fails: without an API key, or when the model is
// unreachable, it falls back to a fixed notice so the report still renders.
package commentary

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/mooket/beefdesk"
)

// Canned notices returned instead of an error.
const (
	// NoticeNoKey is returned when no API key is configured.
	NoticeNoKey = "AI分析不可用: 缺少API密钥"
	// NoticeOffline is returned when the model cannot be reached.
	NoticeOffline = "系统离线: 无法连接至 MooketQUANT 风控模型服务器。"
	// NoticeEmpty is returned when the model answers with nothing.
	NoticeEmpty = "分析暂时不可用。"
)

// DefaultModel is the model the daily note is written with.
const DefaultModel = "gemini-2.5-flash"

// Snapshot is everything the strategist gets to see: the index, the
// watchlist, the position book and the inventory valuation totals.
type Snapshot struct {
	On         beefdesk.Date
	IndexPrice float64
	ChangePct  float64
	ImportCost float64
	Spread     float64

	Factors   []beefdesk.Factor
	Positions beefdesk.Positions
	Inventory beefdesk.PortfolioTotals
}

// Generator writes the daily note.
type Generator struct {
	// APIKey authenticates against the Gemini API. Empty means the
	// generator answers NoticeNoKey without going to the network.
	APIKey string
	// Model overrides DefaultModel when set.
	Model string
}

// Generate writes the strategy note for the snapshot. It returns prose in
// all cases, degraded notices included, and never an error.
func (g Generator) Generate(ctx context.Context, snap Snapshot) string {
	if g.APIKey == "" {
		return NoticeNoKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: g.APIKey})
	if err != nil {
		return NoticeOffline
	}
	model := g.Model
	if model == "" {
		model = DefaultModel
	}
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(BuildPrompt(snap)), nil)
	if err != nil {
		return NoticeOffline
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return NoticeEmpty
	}
	return text
}

// BuildPrompt renders the strategist briefing for a snapshot. Exported so
// the prompt can be inspected and tested without calling the model.
func BuildPrompt(snap Snapshot) string {
	var b strings.Builder

	b.WriteString("角色设定：你是一家顶级大宗商品现货贸易公司(MooketQUANT)的首席策略官。\n\n")
	b.WriteString("【严禁事项】\n")
	b.WriteString("1. **禁止建议期货对冲/做空**：中国牛肉行业没有期货合约，无法对冲。只能做多（补库）或卖出（去库存）。\n")
	b.WriteString("2. **禁止高频交易建议**：牛肉贸易是低频、长周期的现货生意。\n\n")
	b.WriteString("核心逻辑：\n")
	b.WriteString("- **周期博弈**：利用Monte Carlo模拟预测未来可能的\"政策市\"。\n")
	b.WriteString("- **库存管理**：基于\"内外价差\"和\"保障措施预期\"，决定是囤货(Stock In)还是甩货(Destock)。\n")
	b.WriteString("- **资金流**：关注资金占用成本(LPR)和流动性风险。\n\n")

	fmt.Fprintf(&b, "市场数据 (中国进口主流件套价格指数 CNY/kg):\n")
	fmt.Fprintf(&b, "- 日期: %s\n", snap.On)
	fmt.Fprintf(&b, "- 最新指数: %.3f (日涨跌: %.2f%%)\n", snap.IndexPrice, snap.ChangePct)
	fmt.Fprintf(&b, "- 进口成本 (CIF估算): %.2f\n", snap.ImportCost)
	fmt.Fprintf(&b, "- 内外价差: %.2f元/kg\n\n", snap.Spread)

	if len(snap.Factors) > 0 {
		b.WriteString("关键因子:\n")
		for _, f := range snap.Factors {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", f.Name, f.Value, f.Impact)
		}
		b.WriteString("\n")
	}

	if len(snap.Positions) > 0 {
		b.WriteString("持仓:\n")
		for _, p := range snap.Positions {
			fmt.Fprintf(&b, "- %s: %v吨, 浮动盈亏: %s\n", p.CutName, p.QuantityTons, p.UnrealizedPL)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "库存盘面: %d个货柜, 总重%s kg, 预估利润%s, 日均资金与仓储消耗%s\n\n",
		snap.Inventory.Containers, snap.Inventory.Weight,
		snap.Inventory.Profit, snap.Inventory.DailyBurn)

	b.WriteString("任务：生成一份\"MooketQUANT 现货经营策略日报\" (中文)。\n\n")
	b.WriteString("要求：\n")
	b.WriteString("1. **宏观推演 (Scenario Analysis)**：预测未来90天价格重心是否上移。\n")
	b.WriteString("2. **现货策略**：针对当前持仓，给出具体的库存建议。\n")
	b.WriteString("3. **国产机会**：分析在\"内外价差\"收窄背景下，抄底国产公牛的风险收益比。\n")
	b.WriteString("4. **风格**：极度专业，使用术语\"库销比\"、\"流转率\"、\"资金成本\"、\"随机游走模拟\"。\n")
	b.WriteString("5. 字数：250字以内。\n")

	return b.String()
}

// SnapshotOf assembles a snapshot from the usual desk pieces. The domestic
// reference price anchors the spread.
func SnapshotOf(v *beefdesk.Valuation, index *beefdesk.IndexSeries, positions beefdesk.Positions, factors []beefdesk.Factor, domesticPrice float64) Snapshot {
	snap := Snapshot{
		On:        v.On,
		Factors:   factors,
		Positions: positions,
		Inventory: v.Totals,
	}
	if latest, ok := index.Latest(); ok {
		snap.IndexPrice = latest.Price
		snap.ImportCost = latest.ImportCost
		_, snap.ChangePct = index.Delta()
		snap.Spread = index.Spread(domesticPrice)
	}
	return snap
}
