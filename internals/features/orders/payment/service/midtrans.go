package service

import (
	"errors"
	"os"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	orderModel "tokorakit_backend/internals/features/orders/order/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans dipanggil sekali saat bootstrap app.
// MIDTRANS_USE_PROD=true memakai environment Production.
func InitMidtrans(serverKey string) {
	if os.Getenv("MIDTRANS_USE_PROD") == "true" {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// GenerateSnapToken membuat token Snap untuk satu pesanan.
// Invoice dipakai sebagai OrderID di sisi Midtrans.
func GenerateSnapToken(order orderModel.Order, cust CustomerInput) (string, string, error) {
	if order.OrderTotalPrice <= 0 {
		return "", "", errors.New("total pesanan tidak valid")
	}
	if order.OrderInvoiceNumber == "" {
		return "", "", errors.New("invoice pesanan kosong")
	}

	itemName := "Pembelian komponen PC"
	if order.OrderType == orderModel.TypeCustomPC {
		itemName = "Rakitan PC custom"
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderInvoiceNumber,
			GrossAmt: order.OrderTotalPrice,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       order.OrderID.String(),
				Price:    order.OrderTotalPrice,
				Qty:      1,
				Name:     itemName,
				Category: string(order.OrderType),
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
