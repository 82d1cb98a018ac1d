package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/pkg/card"
)

type Step string

const (
	StepCustomerInfo Step = "CUSTOMER_INFO"
	StepShippingInfo Step = "SHIPPING_INFO"
	StepPaymentInfo  Step = "PAYMENT_INFO"
	StepOrderReview  Step = "ORDER_REVIEW"
)

type CheckoutError error

var (
	ErrEmptyCart                     CheckoutError = errors.New("checkout requires a non-empty cart")
	ErrInvalidCheckoutFlowTransition CheckoutError = errors.New("invalid checkout flow transition")
)

// customer info
var (
	ErrMissingFirstName CheckoutError = errors.New("first name is required")
	ErrMissingLastName  CheckoutError = errors.New("last name is required")
	ErrMissingEmail     CheckoutError = errors.New("email is required")
	ErrInvalidEmail     CheckoutError = errors.New("email format is invalid")
)

// shipping info
var (
	ErrMissingAddress CheckoutError = errors.New("address is required")
	ErrMissingCity    CheckoutError = errors.New("city is required")
	ErrMissingZipCode CheckoutError = errors.New("zip code is required")
)

// payment info
var (
	ErrMissingCardNumber CheckoutError = errors.New("card number is required")
	ErrInvalidCardNumber CheckoutError = errors.New("card number is invalid")
	ErrMissingCardExpiry CheckoutError = errors.New("card expiry is required")
	ErrInvalidCardExpiry CheckoutError = errors.New("card expiry is invalid")
	ErrMissingCardCvv    CheckoutError = errors.New("card cvv is required")
	ErrInvalidCardCvv    CheckoutError = errors.New("card cvv is invalid")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

type PaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// Flow 結帳流程狀態機
// CUSTOMER_INFO -> SHIPPING_INFO -> PAYMENT_INFO -> ORDER_REVIEW
// 只能逐步前進，GoBack一次退一步
// 欄位不匯出，後段資料只能透過通過驗證的轉移寫入
type Flow struct {
	step         Step
	cart         Cart
	customerInfo *CustomerInfo
	shippingInfo *ShippingInfo
	paymentInfo  *PaymentInfo
}

// StartCheckout 以購物車快照開始結帳
// 錯誤:
//   - ErrEmptyCart: 空購物車不可結帳
func StartCheckout(cart Cart) (Flow, error) {
	if cart.IsEmpty() {
		return Flow{}, ErrEmptyCart
	}
	return Flow{step: StepCustomerInfo, cart: cart}, nil
}

func (f Flow) Step() Step {
	return f.step
}

// Cart 回傳結帳當下的購物車快照
func (f Flow) Cart() Cart {
	return f.cart
}

func (f Flow) CustomerInfo() (CustomerInfo, bool) {
	if f.customerInfo == nil {
		return CustomerInfo{}, false
	}
	return *f.customerInfo, true
}

func (f Flow) ShippingInfo() (ShippingInfo, bool) {
	if f.shippingInfo == nil {
		return ShippingInfo{}, false
	}
	return *f.shippingInfo, true
}

func (f Flow) PaymentInfo() (PaymentInfo, bool) {
	if f.paymentInfo == nil {
		return PaymentInfo{}, false
	}
	return *f.paymentInfo, true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func assertValidCustomerInfo(info CustomerInfo) error {
	if isBlank(info.FirstName) {
		return ErrMissingFirstName
	}
	if isBlank(info.LastName) {
		return ErrMissingLastName
	}
	if isBlank(info.Email) {
		return ErrMissingEmail
	}
	if !emailPattern.MatchString(strings.TrimSpace(info.Email)) {
		return ErrInvalidEmail
	}
	return nil
}

func assertValidShippingInfo(info ShippingInfo) error {
	if isBlank(info.Address) {
		return ErrMissingAddress
	}
	if isBlank(info.City) {
		return ErrMissingCity
	}
	if isBlank(info.ZipCode) {
		return ErrMissingZipCode
	}
	return nil
}

// AssertValidPaymentInfo 供表單在轉移前預先驗證，錯誤分類與GoToOrderReview一致
func AssertValidPaymentInfo(info PaymentInfo) error {
	if isBlank(info.CardNumber) {
		return ErrMissingCardNumber
	}
	if !card.ValidNumber(info.CardNumber) {
		return ErrInvalidCardNumber
	}
	if isBlank(info.Expiry) {
		return ErrMissingCardExpiry
	}
	if !card.ValidExpiry(info.Expiry, time.Now()) {
		return ErrInvalidCardExpiry
	}
	if isBlank(info.CVV) {
		return ErrMissingCardCvv
	}
	if !card.ValidCVV(info.CVV) {
		return ErrInvalidCardCvv
	}
	return nil
}

func (f Flow) transitionError(expected Step) error {
	return fmt.Errorf("%w: expected step %s, got %s", ErrInvalidCheckoutFlowTransition, expected, f.step)
}

// GoToShippingInfo 驗證顧客資料後前進到SHIPPING_INFO
func (f Flow) GoToShippingInfo(info CustomerInfo) (Flow, error) {
	if f.step != StepCustomerInfo {
		return Flow{}, f.transitionError(StepCustomerInfo)
	}
	if err := assertValidCustomerInfo(info); err != nil {
		return Flow{}, err
	}

	validated := CustomerInfo{
		FirstName: strings.TrimSpace(info.FirstName),
		LastName:  strings.TrimSpace(info.LastName),
		Email:     strings.TrimSpace(info.Email),
	}
	next := f
	next.customerInfo = &validated
	next.step = StepShippingInfo
	return next, nil
}

// GoToPaymentInfo 驗證收件資料後前進到PAYMENT_INFO
func (f Flow) GoToPaymentInfo(info ShippingInfo) (Flow, error) {
	if f.step != StepShippingInfo {
		return Flow{}, f.transitionError(StepShippingInfo)
	}
	if err := assertValidShippingInfo(info); err != nil {
		return Flow{}, err
	}

	validated := ShippingInfo{
		Address: strings.TrimSpace(info.Address),
		City:    strings.TrimSpace(info.City),
		ZipCode: strings.TrimSpace(info.ZipCode),
	}
	next := f
	next.shippingInfo = &validated
	next.step = StepPaymentInfo
	return next, nil
}

// GoToOrderReview 驗證付款資料後前進到ORDER_REVIEW
func (f Flow) GoToOrderReview(info PaymentInfo) (Flow, error) {
	if f.step != StepPaymentInfo {
		return Flow{}, f.transitionError(StepPaymentInfo)
	}
	if err := AssertValidPaymentInfo(info); err != nil {
		return Flow{}, err
	}

	validated := PaymentInfo{
		CardNumber: strings.TrimSpace(info.CardNumber),
		Expiry:     strings.TrimSpace(info.Expiry),
		CVV:        strings.TrimSpace(info.CVV),
	}
	next := f
	next.paymentInfo = &validated
	next.step = StepOrderReview
	return next, nil
}

// GoBack 退一步，保留已輸入的資料供重新編輯
// 在CUSTOMER_INFO時為no-op
func (f Flow) GoBack() Flow {
	next := f
	switch f.step {
	case StepShippingInfo:
		next.step = StepCustomerInfo
	case StepPaymentInfo:
		next.step = StepShippingInfo
	case StepOrderReview:
		next.step = StepPaymentInfo
	}
	return next
}

// OrderDetails 組出訂單明細，只有在ORDER_REVIEW可呼叫
// 金額以呼叫當下的購物車快照計算
func (f Flow) OrderDetails() (OrderDetails, error) {
	if f.step != StepOrderReview {
		return OrderDetails{}, f.transitionError(StepOrderReview)
	}

	return OrderDetails{
		CustomerInfo: *f.customerInfo,
		ShippingInfo: *f.shippingInfo,
		PaymentInfo:  *f.paymentInfo,
		Items:        f.cart.LineItems(),
		Totals: Totals{
			Subtotal: f.cart.Subtotal(),
			Tax:      f.cart.Tax(),
			Shipping: f.cart.Shipping(),
			Total:    f.cart.Total(),
		},
	}, nil
}

// FlowSnapshot Flow的可序列化形式，供redis session儲存
type FlowSnapshot struct {
	Step         Step          `json:"step"`
	Items        []LineItem    `json:"items"`
	CustomerInfo *CustomerInfo `json:"customerInfo,omitempty"`
	ShippingInfo *ShippingInfo `json:"shippingInfo,omitempty"`
	PaymentInfo  *PaymentInfo  `json:"paymentInfo,omitempty"`
}

func (f Flow) Snapshot() FlowSnapshot {
	snap := FlowSnapshot{
		Step:  f.step,
		Items: f.cart.LineItems(),
	}
	if f.customerInfo != nil {
		info := *f.customerInfo
		snap.CustomerInfo = &info
	}
	if f.shippingInfo != nil {
		info := *f.shippingInfo
		snap.ShippingInfo = &info
	}
	if f.paymentInfo != nil {
		info := *f.paymentInfo
		snap.PaymentInfo = &info
	}
	return snap
}

var stepRank = map[Step]int{
	StepCustomerInfo: 0,
	StepShippingInfo: 1,
	StepPaymentInfo:  2,
	StepOrderReview:  3,
}

// RestoreFlow 從快照還原Flow
// 快照內容視為已通過驗證，不重新檢查庫存
// 但快照來自外部儲存，步驟與已收集資料的一致性要重新檢查，
// 否則被截斷的session會在OrderDetails解參考nil
func RestoreFlow(snap FlowSnapshot) (Flow, error) {
	rank, ok := stepRank[snap.Step]
	if !ok {
		return Flow{}, fmt.Errorf("%w: unknown step %q", ErrInvalidCheckoutFlowTransition, snap.Step)
	}
	if len(snap.Items) == 0 {
		return Flow{}, ErrEmptyCart
	}
	if rank >= stepRank[StepShippingInfo] && snap.CustomerInfo == nil {
		return Flow{}, fmt.Errorf("%w: step %s requires customer info", ErrInvalidCheckoutFlowTransition, snap.Step)
	}
	if rank >= stepRank[StepPaymentInfo] && snap.ShippingInfo == nil {
		return Flow{}, fmt.Errorf("%w: step %s requires shipping info", ErrInvalidCheckoutFlowTransition, snap.Step)
	}
	if rank >= stepRank[StepOrderReview] && snap.PaymentInfo == nil {
		return Flow{}, fmt.Errorf("%w: step %s requires payment info", ErrInvalidCheckoutFlowTransition, snap.Step)
	}

	items := make([]LineItem, len(snap.Items))
	copy(items, snap.Items)

	f := Flow{
		step: snap.Step,
		cart: Cart{lineItems: items},
	}
	if snap.CustomerInfo != nil {
		info := *snap.CustomerInfo
		f.customerInfo = &info
	}
	if snap.ShippingInfo != nil {
		info := *snap.ShippingInfo
		f.shippingInfo = &info
	}
	if snap.PaymentInfo != nil {
		info := *snap.PaymentInfo
		f.paymentInfo = &info
	}
	return f, nil
}
