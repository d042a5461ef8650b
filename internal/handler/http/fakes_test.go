package http

import (
	"context"
	"io"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/company"
	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/hr"
	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/master/entry"
	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/master/section"
)

type fakeAttendanceService struct {
	lastFilter attendance.ReportFilter
	lastExport attendance.ExportRequest
	report     attendance.AttendanceReport
	err        error
}

func (f *fakeAttendanceService) GetReport(ctx context.Context, filter attendance.ReportFilter) (attendance.AttendanceReport, error) {
	f.lastFilter = filter
	return f.report, f.err
}

func (f *fakeAttendanceService) Export(ctx context.Context, req attendance.ExportRequest) (attendance.ExportFile, error) {
	f.lastExport = req
	if f.err != nil {
		return attendance.ExportFile{}, f.err
	}
	return attendance.ExportFile{
		Filename:    "attendance-summary-2024-03-10.csv",
		ContentType: "text/csv",
		Content:     []byte("Date,Shift,Total,Present,Absent,Late,Early Out,Overtime\n2024-03-10,morning,3,2,1,1,0,0\n"),
	}, nil
}

type fakeLeaveService struct {
	lastUpdate  leave.UpdateStatusRequest
	lastPending leave.PendingFilter
	lastRange   leave.DateRangeFilter
	lastYear    leave.YearFilter
	err         error
}

func (f *fakeLeaveService) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveRequestResponse, error) {
	f.lastUpdate = req
	if f.err != nil {
		return leave.LeaveRequestResponse{}, f.err
	}
	return leave.LeaveRequestResponse{ID: req.LeaveID, Status: string(req.Status)}, nil
}

func (f *fakeLeaveService) ListPending(ctx context.Context, filter leave.PendingFilter) ([]leave.LeaveRequestResponse, error) {
	f.lastPending = filter
	return []leave.LeaveRequestResponse{}, f.err
}

func (f *fakeLeaveService) ListMonthly(ctx context.Context, filter leave.DateRangeFilter) ([]leave.LeaveRequestResponse, error) {
	f.lastRange = filter
	return []leave.LeaveRequestResponse{}, f.err
}

func (f *fakeLeaveService) CountByType(ctx context.Context, filter leave.DateRangeFilter) ([]leave.LeaveTypeCountResponse, error) {
	f.lastRange = filter
	return []leave.LeaveTypeCountResponse{{LeaveTypeID: "lt-1", Name: "Annual", Count: 4}}, f.err
}

func (f *fakeLeaveService) YearEndBalances(ctx context.Context, filter leave.YearFilter) ([]leave.LeaveBalanceResponse, error) {
	f.lastYear = filter
	return []leave.LeaveBalanceResponse{}, f.err
}

func (f *fakeLeaveService) OpenYear(ctx context.Context, year int) (int64, error) {
	return 0, f.err
}

type fakeMasterService struct {
	lastKind entry.Kind
	lastID   string
	err      error
}

func (f *fakeMasterService) ListEntries(ctx context.Context, kind entry.Kind) ([]entry.EntryResponse, error) {
	f.lastKind = kind
	return []entry.EntryResponse{}, f.err
}

func (f *fakeMasterService) GetEntry(ctx context.Context, kind entry.Kind, id string) (entry.EntryResponse, error) {
	f.lastKind, f.lastID = kind, id
	return entry.EntryResponse{ID: id}, f.err
}

func (f *fakeMasterService) CreateEntry(ctx context.Context, kind entry.Kind, req entry.UpsertEntryRequest) (entry.EntryResponse, error) {
	f.lastKind = kind
	if f.err != nil {
		return entry.EntryResponse{}, f.err
	}
	return entry.EntryResponse{ID: "new", Code: req.Code, Name: req.Name}, nil
}

func (f *fakeMasterService) UpdateEntry(ctx context.Context, kind entry.Kind, id string, req entry.UpsertEntryRequest) (entry.EntryResponse, error) {
	f.lastKind, f.lastID = kind, id
	return entry.EntryResponse{ID: id, Code: req.Code, Name: req.Name}, f.err
}

func (f *fakeMasterService) DeleteEntry(ctx context.Context, kind entry.Kind, id string) error {
	f.lastKind, f.lastID = kind, id
	return f.err
}

func (f *fakeMasterService) ListSections(ctx context.Context) ([]section.SectionResponse, error) {
	return []section.SectionResponse{}, f.err
}

func (f *fakeMasterService) GetSection(ctx context.Context, id string) (section.SectionResponse, error) {
	f.lastID = id
	return section.SectionResponse{ID: id}, f.err
}

func (f *fakeMasterService) CreateSection(ctx context.Context, req section.UpsertSectionRequest) (section.SectionResponse, error) {
	return section.SectionResponse{ID: "new", Code: req.Code}, f.err
}

func (f *fakeMasterService) UpdateSection(ctx context.Context, id string, req section.UpsertSectionRequest) (section.SectionResponse, error) {
	f.lastID = id
	return section.SectionResponse{ID: id, Code: req.Code}, f.err
}

func (f *fakeMasterService) DeleteSection(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

type fakeCompanyService struct {
	lastUpload   company.UploadLogoRequest
	uploadedData []byte
	err          error
}

func (f *fakeCompanyService) List(ctx context.Context) ([]company.CompanyResponse, error) {
	return []company.CompanyResponse{}, f.err
}

func (f *fakeCompanyService) GetByID(ctx context.Context, id string) (company.CompanyResponse, error) {
	return company.CompanyResponse{ID: id}, f.err
}

func (f *fakeCompanyService) Create(ctx context.Context, req company.UpsertCompanyRequest) (company.CompanyResponse, error) {
	return company.CompanyResponse{ID: "new", Code: req.Code}, f.err
}

func (f *fakeCompanyService) Update(ctx context.Context, id string, req company.UpsertCompanyRequest) (company.CompanyResponse, error) {
	return company.CompanyResponse{ID: id, Code: req.Code}, f.err
}

func (f *fakeCompanyService) Delete(ctx context.Context, id string) error {
	return f.err
}

func (f *fakeCompanyService) UploadLogo(ctx context.Context, req company.UploadLogoRequest) (company.LogoResponse, error) {
	f.lastUpload = req
	data, err := io.ReadAll(req.File)
	if err != nil {
		return company.LogoResponse{}, err
	}
	f.uploadedData = data
	return company.LogoResponse{URL: "/uploads/logos/" + req.CompanyCode + "/logo.png", Path: "logos/" + req.CompanyCode + "/logo.png"}, f.err
}

type fakeHRService struct {
	lastUser string
	lastKind hr.Kind
	lastReq  hr.CreateCaseRequest
}

func (f *fakeHRService) List(ctx context.Context, userID string, kind hr.Kind) ([]hr.CaseResponse, error) {
	f.lastUser, f.lastKind = userID, kind
	return []hr.CaseResponse{}, nil
}

func (f *fakeHRService) Create(ctx context.Context, kind hr.Kind, req hr.CreateCaseRequest) (hr.CaseResponse, error) {
	f.lastKind, f.lastReq = kind, req
	return hr.CaseResponse{ID: "case-1", Kind: kind, Title: req.Title, UserID: req.UserID}, nil
}

func (f *fakeHRService) Dashboard(ctx context.Context, userID string) (hr.DashboardResponse, error) {
	f.lastUser = userID
	return hr.DashboardResponse{Grievances: []hr.CaseResponse{}, Meetings: []hr.CaseResponse{}, Trainings: []hr.CaseResponse{}}, nil
}
