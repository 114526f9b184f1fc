package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/configs"
	donorService "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/donors/service"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/funding/dto"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/funding/service"
	helper "github.com/Tafsirchy/VitalFlow-BackendNew/internals/helpers"
)

var validate = validator.New()

type FundingController struct {
	DB         *gorm.DB
	Reconciler *service.Reconciler
}

func NewFundingController(db *gorm.DB, gateway service.Gateway) *FundingController {
	directory := donorService.NewDirectory(donorService.NewDonorStore(db))
	return &FundingController{
		DB:         db,
		Reconciler: service.NewReconciler(gateway, service.NewPaymentStore(db), directory),
	}
}

// POST /funding/checkout — public; guests may donate. When the caller is
// authenticated, the verified email wins over whatever the body says.
func (ctrl *FundingController) InitiateCheckout(c *fiber.Ctx) error {
	var body dto.CheckoutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if email := helper.VerifiedEmail(c); email != "" {
		body.DonorEmail = email
	}

	successURL := configs.ClientURL + "/funding/success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := configs.ClientURL + "/funding"

	session, err := ctrl.Reconciler.InitiateCheckout(
		c.UserContext(), body.Amount, body.DonorName, body.DonorEmail, successURL, cancelURL)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Checkout session created", fiber.Map{
		"sessionId": session.SessionID,
		"url":       session.RedirectURL,
	})
}

// POST /funding/reconcile — confirm a completed session. Safe to retry: a
// duplicate confirmation answers 409 without touching the ledger.
func (ctrl *FundingController) Reconcile(c *fiber.Ctx) error {
	var body dto.ReconcileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.SessionID == "" {
		body.SessionID = c.Query("session_id")
	}

	rec, err := ctrl.Reconciler.Reconcile(c.UserContext(), body.SessionID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment recorded", rec)
}

// GET /funding — public list of funding records, paginated.
func (ctrl *FundingController) List(c *fiber.Ctx) error {
	params, err := helper.ParsePageParams(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	recs, total, err := ctrl.Reconciler.ListPayments(c.UserContext(), params.Limit(), params.Offset())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Funding records fetched", fiber.Map{
		"funding": recs,
		"meta":    helper.BuildMeta(total, params),
	})
}

// GET /funding/total — ledger-wide aggregate, zeros when empty.
func (ctrl *FundingController) Totals(c *fiber.Ctx) error {
	totals, err := ctrl.Reconciler.Totals(c.UserContext())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Funding totals fetched", totals)
}
