package conversation

import (
	"fmt"

	"github.com/DIMO-Network/insurance-chatbot/internal/messenger"
)

// Reply texts.
const (
	textAnnouncePolicies     = "您現擁有的保險計劃包括:"
	textConfirmProfile       = "很好!為提供更適合您的方案, 請核對您的個人基本信息。"
	textAskFileClaim         = "需耍為您申請理賠嗎?"
	textIncidentDatePrompt   = "請以(XXXX年XX月XX日XX時)格式輸入事故日期"
	textPayerTypePrompt      = "就診身分是健保, 自費或是其他?"
	textHospitalPrompt       = "就診之醫療院所是?"
	textUploadPrompt         = "請上傳您的診斷書"
	textGreeting             = "你好!  請問有什麼需要幫助呢?"
	textQuickReplyTapped     = "Quick reply tapped"
	textClaimReceived        = "感謝您的合作。請核對您的理賠申請及預定給付方式。"
	textRecommendProduct     = "我們為你推薦新推出的計劃:"
	textRecommendSupplement  = "您只購買了新光人壽New Health健康保險, 在其他方面尚未得到足夠的保障。我們根據您的個人需要, 為你推薦:"
	textPaymentConfirmed     = "理賠手續完成, 請保存以下理賠編號:"
	textAuthenticationPassed = "Authentication successful"

	textBenefitsDisclosure = "您所購買的新光人壽New Health健康保險主要給付項目：住院醫療費用保險金\n" +
		"一、醫師指示用藥。\n" +
		"二、血液（非緊急傷病必要之輸血）。\n" +
		"三、掛號費及證明文件。\n" +
		"四、來往醫院之救護車費。\n" +
		"五、超等住院之病房費差額。\n" +
		"六、管灌飲食以外之膳食費。\n" +
		"七、特別護士以外之護理費。\n" +
		"八、超過全民健康保險給付之住院醫療費用，但不包括下列費用:\n" +
		"1、藥癮治療、預防性手術、變性手術。\n" +
		"2、成藥。\n" +
		"3、指定醫師費。\n" +
		"4、人體試驗，但經全民健康保險專案批准給付者不在此限。\n" +
		"*詳細內容以保險單條款為準"

	// Placeholder is shown in the claim summary for intake fields the user never answered.
	Placeholder = "未提供"

	policyPeriod = "2017 年04 月 30日 – 2018年04月 30日"

	textProfile = "姓名: 陳大文\n成員編號: AZ0129\n性別: 男\n出生日期: 1988 年 05 月 08 日\n婚姻狀況: 已婚\n育有孩子:  1個\n工作類別:水電修理相關\n\n" +
		"已有保障: \n新光人壽New Health健康保險\n 有效日期: " + policyPeriod

	claimSummaryFormat = "姓名: 陳大文\n成員編號: AZ0129\n出生日期: 1990 年 05 月 08 日\n電郵: dawen.chen@gmail.com\n\n" +
		"已購買保險: \n新光人壽New Health健康保險\n 有效日期: " + policyPeriod + " \n\n" +
		"申請理賠項目: 醫療保險金\n事故日期:  %s\n就診原因:  胃潰瘍\n就診身分:  %s\n曾就診醫療院所:  %s\n\n\n" +
		"理賠給付方式: \n匯款至:  申請人帳戶\n戶名: 陳大文\n金融機構及分行名稱: 新光銀行復興分行\n分行代號: 1030073\n帳 號: 0985-50-012345-6\n"
)

const (
	healthPlanURL   = "https://online.skl.com.tw/m/Introduction/Health"
	upCashPlanURL   = "https://online.skl.com.tw/m/Introduction/UpCash"
	termLifePlanURL = "https://online.skl.com.tw/m/Introduction/Life"
	accidentPlanURL = "https://online.skl.com.tw/m/Introduction/Accident"

	receiptCurrency      = "TWD"
	receiptRecipientName = "陳大文"
	receiptPayment       = "Visa 1234"
	orderNumberPrefix    = "SKL"
	claimNumberPrefix    = "SKL-P"
)

var receiptAddress = messenger.Address{
	Street1:    "99號",
	Street2:    "忠孝西路一段",
	City:       "台北市",
	PostalCode: "200206",
	State:      "TW",
	Country:    "台灣",
}

// product is a plan that can be recommended and bought through a receipt.
type product struct {
	title           string
	cardSubtitle    string
	receiptSubtitle string
	url             string
	image           string
	price           messenger.Amount
	buyPayload      Intent
}

var (
	termLifeProduct = product{
		title:           "My Way定期壽險",
		cardSubtitle:    "若遭不幸, 可提供家人的財務保障。 第2年免審查...\n＊本保險為不分紅保險單，不參加紅利分配，並無紅利給付項目。本商品經本公司合格簽署\nNT$4,200",
		receiptSubtitle: "若遭不幸, 可提供家人的財務保障。 第2年免審查...",
		url:             termLifePlanURL,
		image:           "stock2.jpg",
		price:           messenger.NewAmount("4200.00"),
		buyPayload:      IntentReceiptTermLife,
	}
	accidentProduct = product{
		title:           "i平安傷害保險",
		cardSubtitle:    "高CP值的保險方案, 保障最高600萬, 涵蓋意外事故造成的傷殘及死亡。被保險人於本契約有效期間內遭受保單條款第二條約定的意外傷害事故...\nNT$5,640",
		receiptSubtitle: "高CP值的保險方案, 保障最高600萬, 涵蓋意外事故造成的傷殘及死亡。...",
		url:             accidentPlanURL,
		image:           "stock3.jpg",
		price:           messenger.NewAmount("5640.00"),
		buyPayload:      IntentReceiptAccident,
	}
)

func (e *Engine) assetURL(name string) string {
	return e.serverURL + "/assets/" + name
}

func (e *Engine) policyOverview(senderID string) (messenger.SendRequest, error) {
	return messenger.NewGenericTemplate(senderID, messenger.Element{
		Title:    "新光人壽New Health健康保險",
		Subtitle: "有效日期: " + policyPeriod + "\n主要給付項目：住院醫療費用保險金被保險人在本契約有效期間內因保單條款第四…",
		ItemURL:  healthPlanURL,
		Buttons: []messenger.Button{
			messenger.WebURLButton("查看詳情", healthPlanURL),
			messenger.PostbackButton("其他推薦", IntentRecommendSecondProduct.Payload()),
		},
	})
}

func (e *Engine) profileConfirmation(senderID string) (messenger.SendRequest, error) {
	return messenger.NewButtonTemplate(senderID, textProfile,
		messenger.PostbackButton("確認", IntentRecommendSupplementary.Payload()),
	)
}

func (e *Engine) secondProduct(senderID string) (messenger.SendRequest, error) {
	return messenger.NewGenericTemplate(senderID, messenger.Element{
		Title: "Up Cash 利率變動型保險【乙型】",
		Subtitle: "每年繳新臺幣36,000元*, 繳費20年,\n 來年金保單價值準備金可達新臺幣1,745,184元**\n" +
			"*假設年金累積期間第一保單年度宣告利率為2.74%\n**實際數值應以未來各保單年度實際金額為準",
		ItemURL:  upCashPlanURL,
		ImageURL: e.assetURL("stock1.jpg"),
		Buttons: []messenger.Button{
			messenger.WebURLButton("了解更多", upCashPlanURL),
		},
	})
}

func (e *Engine) existingCoverage(senderID string) (messenger.SendRequest, error) {
	return messenger.NewGenericTemplate(senderID, messenger.Element{
		Title:    "核對已有保障",
		Subtitle: "已有保障: 新光人壽New Health健康保險\n 有效日期: " + policyPeriod,
		Buttons: []messenger.Button{
			messenger.PostbackButton("確認", IntentRecommendSupplementary.Payload()),
		},
	})
}

func (e *Engine) supplementaryProducts(senderID string) (messenger.SendRequest, error) {
	cards := make([]messenger.Element, 0, 2)
	for _, p := range []product{termLifeProduct, accidentProduct} {
		cards = append(cards, messenger.Element{
			Title:    p.title,
			Subtitle: p.cardSubtitle,
			ItemURL:  p.url,
			ImageURL: e.assetURL(p.image),
			Buttons: []messenger.Button{
				messenger.PostbackButton("購買", p.buyPayload.Payload()),
			},
		})
	}
	return messenger.NewGenericTemplate(senderID, cards...)
}

func (e *Engine) purchaseReceipt(senderID string, p product) (messenger.SendRequest, error) {
	address := receiptAddress
	return messenger.NewReceiptTemplate(senderID, messenger.Receipt{
		RecipientName: receiptRecipientName,
		OrderNumber:   messenger.ReferenceCode(orderNumberPrefix, e.rng),
		Currency:      receiptCurrency,
		PaymentMethod: receiptPayment,
		Timestamp:     e.now(),
		Items: []messenger.ReceiptItem{{
			Title:    p.title,
			Subtitle: p.receiptSubtitle,
			ImageURL: e.assetURL(p.image),
			Quantity: 1,
			Price:    p.price,
		}},
		Address: &address,
	})
}

func (e *Engine) claimSummary(senderID string, fields Fields) (messenger.SendRequest, error) {
	text := fmt.Sprintf(claimSummaryFormat,
		displayField(fields.PolicyDate),
		displayField(fields.PolicyType),
		displayField(fields.Hospital),
	)
	return messenger.NewButtonTemplate(senderID, text,
		messenger.PostbackButton("更改", IntentPaymentUpdate.Payload()),
		messenger.PostbackButton("確認", IntentPaymentConfirm.Payload()),
	)
}

func displayField(value string) string {
	if value == "" {
		return Placeholder
	}
	return value
}
