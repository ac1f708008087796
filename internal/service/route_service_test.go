package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"campus-console/internal/dto"
	"campus-console/internal/model"
)

func testRoute(id int, start, end string, distance float64, accessible bool) model.Route {
	return model.Route{
		ID:            id,
		StartLocation: start,
		EndLocation:   end,
		DistanceM:     model.NewNullFloat(distance),
		Accessible:    model.Bool(accessible),
	}
}

func validRouteReq(start, end string, distance float64) *dto.RouteRequest {
	return &dto.RouteRequest{
		StartLocation: start,
		EndLocation:   end,
		DistanceM:     floatPtr(distance),
		Accessible:    boolPtr(true),
	}
}

// ── FindShortest 测试 ──

func TestRouteService_FindShortest_PicksMinimum(t *testing.T) {
	svc, m := newTestService(testConfig())
	m.route.rows = []model.Route{
		testRoute(1, "Gym", "Library", 120, true),
		testRoute(2, "Library", "Gym", 80, false),
		testRoute(3, "Gym", "Cafeteria", 50, true),
	}

	res, err := svc.Route.FindShortest(context.Background(), "Gym", "Library")
	if err != nil {
		t.Fatalf("FindShortest 应成功: %v", err)
	}
	if res.ID != 2 || *res.DistanceM != 80 || res.Accessible {
		t.Errorf("期望 id=2 距离 80，实际: %+v", res)
	}
}

func TestRouteService_FindShortest_Symmetric(t *testing.T) {
	svc, m := newTestService(testConfig())
	m.route.rows = []model.Route{
		testRoute(1, "Gym", "Library", 120, true),
		testRoute(2, "Library", "Gym", 80, false),
	}

	ab, err := svc.Route.FindShortest(context.Background(), "Gym", "Library")
	if err != nil {
		t.Fatal(err)
	}
	ba, err := svc.Route.FindShortest(context.Background(), "Library", "Gym")
	if err != nil {
		t.Fatal(err)
	}
	if ab.ID != ba.ID {
		t.Errorf("正反查询结果应一致: %d vs %d", ab.ID, ba.ID)
	}
}

func TestRouteService_FindShortest_TrimsInput(t *testing.T) {
	svc, m := newTestService(testConfig())
	m.route.rows = []model.Route{
		testRoute(1, "Gym", "Library", 120, true),
	}

	res, err := svc.Route.FindShortest(context.Background(), "Gym ", "  Library")
	if err != nil {
		t.Fatalf("首尾空白不应影响匹配: %v", err)
	}
	if res.ID != 1 {
		t.Errorf("期望 id=1，实际 id=%d", res.ID)
	}

	if _, err := svc.Route.FindShortest(context.Background(), "   ", "Library"); !errors.Is(err, ErrValidation) {
		t.Errorf("仅含空白的地点名期望 ErrValidation，实际: %v", err)
	}
}

func TestRouteService_FindShortest_TieKeepsFirst(t *testing.T) {
	svc, m := newTestService(testConfig())
	m.route.rows = []model.Route{
		testRoute(5, "A", "B", 40, true),
		testRoute(3, "B", "A", 40, false),
	}

	res, err := svc.Route.FindShortest(context.Background(), "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if res.ID != 5 {
		t.Errorf("并列时应取表中靠前的一条，实际 id=%d", res.ID)
	}
}

func TestRouteService_FindShortest_NullDistance(t *testing.T) {
	svc, m := newTestService(testConfig())
	m.route.rows = []model.Route{
		{ID: 1, StartLocation: "A", EndLocation: "B"},
		testRoute(2, "A", "B", 300, true),
	}

	res, err := svc.Route.FindShortest(context.Background(), "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if res.ID != 2 {
		t.Errorf("空距离不应胜过有效距离，实际 id=%d", res.ID)
	}

	m.route.rows = []model.Route{{ID: 7, StartLocation: "A", EndLocation: "B"}}
	res, err = svc.Route.FindShortest(context.Background(), "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if res.ID != 7 || res.DistanceM != nil {
		t.Errorf("全部为空距离时返回第一条，实际: %+v", res)
	}
}

func TestRouteService_FindShortest_NoRoute(t *testing.T) {
	svc, m := newTestService(testConfig())

	if _, err := svc.Route.FindShortest(context.Background(), "Gym", "Library"); !errors.Is(err, ErrNoRouteBetween) {
		t.Errorf("空表期望 ErrNoRouteBetween，实际: %v", err)
	}

	// 经由 Cafeteria 可达但没有直达记录
	m.route.rows = []model.Route{
		testRoute(1, "Gym", "Cafeteria", 10, true),
		testRoute(2, "Cafeteria", "Library", 10, true),
	}
	if _, err := svc.Route.FindShortest(context.Background(), "Gym", "Library"); !errors.Is(err, ErrNoRouteBetween) {
		t.Errorf("无直达路线期望 ErrNoRouteBetween，实际: %v", err)
	}
}

func TestRouteService_FindShortest_SameEndpoint(t *testing.T) {
	svc, m := newTestService(testConfig())
	m.route.rows = []model.Route{testRoute(1, "Gym", "Gym", 0, true)}

	res, err := svc.Route.FindShortest(context.Background(), "Gym", "Gym")
	if err != nil {
		t.Fatal(err)
	}
	if res.ID != 1 {
		t.Errorf("自环记录应可被查到，实际 id=%d", res.ID)
	}
}

func TestRouteService_FindShortest_EmptyInput(t *testing.T) {
	svc, _ := newTestService(testConfig())

	if _, err := svc.Route.FindShortest(context.Background(), "", "Gym"); !errors.Is(err, ErrValidation) {
		t.Errorf("期望 ErrValidation，实际: %v", err)
	}
}

// ── CRUD 测试 ──

func TestRouteService_Create_Success(t *testing.T) {
	svc, m := newTestService(testConfig())

	res, err := svc.Route.Create(context.Background(), validRouteReq("Gym", "Library", 120))
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if res.ID != 1 || *res.DistanceM != 120 {
		t.Errorf("创建结果不符: %+v", res)
	}
	if msgs := m.notification.messages(); len(msgs) != 1 || msgs[0] != "New route 'Gym → Library' added" {
		t.Errorf("通知不符: %v", msgs)
	}
}

func TestRouteService_Create_AlwaysNotifies(t *testing.T) {
	cfg := testConfig()
	cfg.Feature.NotifyLocationChanges = false
	svc, m := newTestService(cfg)

	if _, err := svc.Route.Create(context.Background(), validRouteReq("Gym", "Library", 1)); err != nil {
		t.Fatal(err)
	}
	if len(m.notification.rows) != 1 {
		t.Error("路线变更不受地点通知开关影响")
	}
}

func TestRouteService_Create_Validation(t *testing.T) {
	cases := map[string]*dto.RouteRequest{
		"缺少起点":  {EndLocation: "B", DistanceM: floatPtr(1), Accessible: boolPtr(true)},
		"缺少距离":  {StartLocation: "A", EndLocation: "B", Accessible: boolPtr(true)},
		"负距离":   {StartLocation: "A", EndLocation: "B", DistanceM: floatPtr(-5), Accessible: boolPtr(true)},
		"缺少无障碍": {StartLocation: "A", EndLocation: "B", DistanceM: floatPtr(1)},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			svc, m := newTestService(testConfig())

			if _, err := svc.Route.Create(context.Background(), req); !errors.Is(err, ErrValidation) {
				t.Errorf("期望 ErrValidation，实际: %v", err)
			}
			if len(m.route.rows) != 0 {
				t.Error("校验失败时不应写入路线")
			}
		})
	}
}

func TestRouteService_Update(t *testing.T) {
	svc, m := newTestService(testConfig())
	m.route.rows = []model.Route{testRoute(1, "Gym", "Library", 120, true)}

	res, err := svc.Route.Update(context.Background(), 1, validRouteReq("Gym", "Library", 95))
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if *res.DistanceM != 95 || m.route.rows[0].DistanceM.Float64 != 95 {
		t.Errorf("更新结果不符: %+v", res)
	}
	if msgs := m.notification.messages(); len(msgs) != 1 || msgs[0] != "Route 'Gym → Library' updated" {
		t.Errorf("通知不符: %v", msgs)
	}

	if _, err := svc.Route.Update(context.Background(), 99, validRouteReq("A", "B", 1)); !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("期望 ErrRouteNotFound，实际: %v", err)
	}
}

func TestRouteService_Delete_MissingStillNotifies(t *testing.T) {
	svc, m := newTestService(testConfig())

	if err := svc.Route.Delete(context.Background(), 42); err != nil {
		t.Fatalf("删除不存在的 id 应静默成功: %v", err)
	}
	if msgs := m.notification.messages(); len(msgs) != 1 || msgs[0] != "Route 42 deleted" {
		t.Errorf("通知不符: %v", msgs)
	}
}

func TestRouteService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(testConfig())

	if _, err := svc.Route.GetByID(context.Background(), 1); !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("期望 ErrRouteNotFound，实际: %v", err)
	}
}

// ── ListEndpoints 测试 ──

func TestRouteService_ListEndpoints(t *testing.T) {
	svc, m := newTestService(testConfig())
	m.route.rows = []model.Route{
		testRoute(1, "Library", "Gym", 1, true),
		testRoute(2, "Gym", "Cafeteria", 1, true),
		testRoute(3, "Cafeteria", "Library", 1, true),
	}

	names, err := svc.Route.ListEndpoints(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Cafeteria", "Gym", "Library"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("期望 %v，实际 %v", want, names)
	}
}
