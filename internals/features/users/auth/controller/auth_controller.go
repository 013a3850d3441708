package controller

import (
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/exceptions"
	"learnsmate_backend/internals/features/users/auth/dto"
	"learnsmate_backend/internals/features/users/auth/service"
	helper "learnsmate_backend/internals/helpers"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// POST /users/login
func (ctrl *AuthController) AdminLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.AdminLogin(c.UserContext(), req)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderAuthorization, "Bearer "+resp.AccessToken)
	return helper.JsonOK(c, "login success", resp)
}

// POST /users/members/login
func (ctrl *AuthController) MemberLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	resp, err := ctrl.Service.MemberLogin(c.UserContext(), req)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderAuthorization, "Bearer "+resp.AccessToken)
	return helper.JsonOK(c, "login success", resp)
}

// GET /users/oauth2?id_token=
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	resp, err := ctrl.Service.GoogleLogin(c.UserContext(), c.Query("id_token"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderAuthorization, "Bearer "+resp.AccessToken)
	return helper.JsonOK(c, "login success", resp)
}

// POST /users/logout
// POST under /users skips the auth middleware, so the token is read here.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw, err := helper.ExtractBearerToken(c)
	if err != nil {
		return exceptions.WithDetail(exceptions.Unauthorized, err.Error())
	}
	if err := ctrl.Service.Logout(c.UserContext(), raw); err != nil {
		return err
	}
	return helper.JsonOK(c, "logout success", nil)
}

// GET /users/email/check?email=
func (ctrl *AuthController) CheckEmail(c *fiber.Ctx) error {
	resp, err := ctrl.Service.CheckEmail(c.UserContext(), c.Query("email"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "email checked", resp)
}

// PATCH /users/mypage/edit/password
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	if err := ctrl.Service.ResetPassword(c.UserContext(), req); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "password changed", nil)
}
