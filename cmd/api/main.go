package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/payrollweb/payroll-backend-go/internal/config"
	appHTTP "github.com/payrollweb/payroll-backend-go/internal/handler/http"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/database"
	"github.com/payrollweb/payroll-backend-go/internal/pkg/jwt"
	"github.com/payrollweb/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/payrollweb/payroll-backend-go/internal/service/attendance"
	authService "github.com/payrollweb/payroll-backend-go/internal/service/auth"
	employeeService "github.com/payrollweb/payroll-backend-go/internal/service/employee"
	payrollService "github.com/payrollweb/payroll-backend-go/internal/service/payroll"
	portalService "github.com/payrollweb/payroll-backend-go/internal/service/portal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		fmt.Println("Error ensuring schema:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, attendanceRepo, employeeRepo)
	portalSvc := portalService.NewPortalService(attendanceRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	portalHandler := appHTTP.NewPortalHandler(portalSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		portalHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
