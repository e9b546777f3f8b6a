package beefdesk

// Factor is one market driver the desk watches, graded by how directly it
// moves the import index: A factors are core, B auxiliary, C reference only.
type Factor struct {
	Name     string
	Category string
	Impact   string // bullish, bearish or neutral, annotated
	Value    string
	Change   string
}

// DemoFactors returns the watchlist of the demo book.
func DemoFactors() []Factor {
	return []Factor{
		{Name: "进口保障措施 (Safeguard)", Category: "A类 (核心)", Impact: "Bullish (利多)", Value: "Decision 11/26", Change: "High Risk"},
		{Name: "美巴关税 (US-Brazil Tariff)", Category: "A类 (核心)", Impact: "Bullish (利多)", Value: "40% Cancelled", Change: "New"},
		{Name: "人民币汇率 (CNY/USD)", Category: "A类 (核心)", Impact: "Neutral (中性)", Value: "7.11", Change: "Flat"},
		{Name: "5年期LPR利率", Category: "B类 (辅助)", Impact: "Neutral (中性)", Value: "3.60%", Change: "Unchanged"},
		{Name: "批发-进口8件套 (8-Piece)", Category: "A类 (核心)", Impact: "Bearish (利空)", Value: "¥52.0/kg", Change: "-0.5%"},
		{Name: "批发-巴西90VL (Trimming)", Category: "B类 (辅助)", Impact: "Neutral (中性)", Value: "¥39.5/kg", Change: "+0.2%"},
		{Name: "内外价差 (Spread)", Category: "A类 (核心)", Impact: "Bearish (利空)", Value: "¥17.36/kg", Change: "收窄"},
		{Name: "国产-育肥公牛 (Fat Bull)", Category: "A类 (核心)", Impact: "Bearish (利空)", Value: "¥27.5/kg", Change: "Low"},
		{Name: "国产-架子母牛 (Cow)", Category: "A类 (核心)", Impact: "Bearish (利空)", Value: "¥22.4/kg", Change: "Weak"},
		{Name: "港口冷库利用率 (Port Cap)", Category: "A类 (核心)", Impact: "Bearish (利空)", Value: "92.5%", Change: "Critical"},
		{Name: "进口总量 (Import Vol)", Category: "B类 (辅助)", Impact: "Bearish (利空)", Value: "28万吨", Change: "+18%"},
		{Name: "港口查验率 (Inspection)", Category: "B类 (辅助)", Impact: "Bullish (利多)", Value: "Very High", Change: "+15%"},
		{Name: "屠宰利润-肉牛 (Margin)", Category: "C类 (参考)", Impact: "Bearish (利空)", Value: "-¥450/头", Change: "Loss"},
		{Name: "替代品-猪肉批发 (Pork)", Category: "C类 (参考)", Impact: "Neutral (中性)", Value: "¥22.5/kg", Change: "Stable"},
		{Name: "巴西-出口中国均价 (Export)", Category: "B类 (辅助)", Impact: "Bullish (利多)", Value: "$4,650/t", Change: "+1.5%"},
		{Name: "巴西活牛 (Arroba)", Category: "B类 (辅助)", Impact: "Neutral (中性)", Value: "R$ 321.5", Change: "-0.3%"},
	}
}
