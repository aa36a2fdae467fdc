package client

import (
	"encoding/json"
	"reflect"
	"testing"
)

// decodeJSON 模拟 HTTP 层拿到的已解码值
func decodeJSON(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("测试数据不是合法 JSON: %v", err)
	}
	return v
}

func TestNormalize_UnwrapsEnvelope(t *testing.T) {
	v := decodeJSON(t, `{"$id":"1","$values":[{"cateId":"C1","cateName":"Drinks"}]}`)

	got := Normalize(v)
	arr, ok := got.([]any)
	if !ok {
		t.Fatalf("信封应拆成数组，得到 %T", got)
	}
	if len(arr) != 1 {
		t.Fatalf("应剩 1 个元素，得到 %d", len(arr))
	}
	obj := arr[0].(map[string]any)
	if obj["cateId"] != "C1" || obj["cateName"] != "Drinks" {
		t.Fatalf("拆信封后数据不对: %+v", obj)
	}
}

func TestNormalize_DropsReferenceStubs(t *testing.T) {
	v := decodeJSON(t, `[
		{"foodId":"F1","foodName":"Cola"},
		{"$ref":"3"},
		{"junk":"no identity"}
	]`)

	got := Normalize(v).([]any)
	if len(got) != 1 {
		t.Fatalf("引用残根和无标识元素应被丢掉，剩 %d 个", len(got))
	}
}

func TestNormalize_CanonicalKeys(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CateID", "cateId"},
		{"cate_id", "cateId"},
		{"Cate-Name", "cateName"},
		{"unit.price", "unitPrice"},
		{"seat count", "seatCount"},
		{"ID", "id"},
		{"$Type", "type"},
		{"total[final]", "total"},
		{"cateId", "cateId"}, // 已规范的不动
	}
	for _, tt := range tests {
		if got := CanonicalKey(tt.in); got != tt.want {
			t.Fatalf("CanonicalKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_Coercion(t *testing.T) {
	v := decodeJSON(t, `{
		"OrderID": "O1        ",
		"Food_ID": "F1  ",
		"quantity": "2",
		"unit_price": "2.50",
		"total": 18,
		"stock": "abc",
		"Status": "DONE",
		"note": "  keep warm  "
	}`)

	got := Normalize(v).(map[string]any)

	if got["orderId"] != "O1" || got["foodId"] != "F1" {
		t.Fatalf("主键应去空白，得到 %q / %q", got["orderId"], got["foodId"])
	}
	if got["quantity"] != 2 {
		t.Fatalf("数量应转整数，得到 %v (%T)", got["quantity"], got["quantity"])
	}
	if got["unitPrice"] != 2.5 {
		t.Fatalf("单价应转浮点，得到 %v", got["unitPrice"])
	}
	if got["total"] != 18.0 {
		t.Fatalf("总额应为浮点，得到 %v", got["total"])
	}
	// 解析失败落 0
	if got["stock"] != 0 {
		t.Fatalf("解析失败应落 0，得到 %v", got["stock"])
	}
	if got["status"] != "completed" {
		t.Fatalf("状态应过归一化，得到 %v", got["status"])
	}
	if got["note"] != "keep warm" {
		t.Fatalf("普通字符串应去两端空白，得到 %q", got["note"])
	}
}

func TestNormalize_StatusScopedToOrderLines(t *testing.T) {
	// 同义词归一只收订单明细行的 status，
	// 桌台和订单自己的状态字典不同，整形时必须原样放行
	table := Normalize(decodeJSON(t, `{"tableId":"T1","status":"occupied"}`)).(map[string]any)
	if table["status"] != "occupied" {
		t.Fatalf("桌台状态被改写: %v", table["status"])
	}

	order := Normalize(decodeJSON(t, `{"orderId":"O1","status":"open"}`)).(map[string]any)
	if order["status"] != "open" {
		t.Fatalf("订单状态被改写: %v", order["status"])
	}

	// 非明细行的 status 只去两端空白
	free := Normalize(decodeJSON(t, `{"tableId":"T2","status":"  free "}`)).(map[string]any)
	if free["status"] != "free" {
		t.Fatalf("桌台状态应只去空白，得到 %q", free["status"])
	}

	// 带 foodId 的明细行照旧走同义词归一
	row := Normalize(decodeJSON(t, `{"foodId":"F1","orderId":"O1","status":"DONE"}`)).(map[string]any)
	if row["status"] != "completed" {
		t.Fatalf("明细行状态应归一化，得到 %v", row["status"])
	}
}

func TestNormalize_CollisionFirstNonEmptyWins(t *testing.T) {
	// cate_id 和 CateID 撞到同一个 cateId；
	// 解码后键序丢失，按字典序扫，先到的非空值赢
	v := map[string]any{
		"CateID":  "",
		"cate_id": "C1",
	}
	got := Normalize(v).(map[string]any)
	if got["cateId"] != "C1" {
		t.Fatalf("撞键应取非空值，得到 %q", got["cateId"])
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		`{"$id":"1","$values":[{"Order_ID":"O1 ","Food_ID":"F1","quantity":"3","Status":"đã hủy"}]}`,
		`{"Table_ID":"T1","status":"occupied"}`,
		`{"CateID":"C1","foods":[{"FoodID":"F1","unit_price":"2.5"},{"$ref":"2"}]}`,
		`[1,"two",{"id":"3"}]`,
		`{"nested":{"Table_ID":"T1","seat count":"4"}}`,
	}
	for _, raw := range inputs {
		once := Normalize(decodeJSON(t, raw))
		twice := Normalize(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("归一化不幂等:\nonce:  %#v\ntwice: %#v", once, twice)
		}
	}
}

func TestNormalize_RecursesNestedDetails(t *testing.T) {
	v := decodeJSON(t, `{
		"OrderID":"O1",
		"Details":{"$id":"2","$values":[
			{"FoodID":"F1","Food_Name":"Cola","quantity":"2","Status":"pending"}
		]}
	}`)

	got := Normalize(v).(map[string]any)
	details, ok := got["details"].([]any)
	if !ok {
		t.Fatalf("嵌套集合应拆信封成数组，得到 %T", got["details"])
	}
	row := details[0].(map[string]any)
	if row["foodName"] != "Cola" || row["quantity"] != 2 || row["status"] != "not started" {
		t.Fatalf("嵌套行归一化不对: %+v", row)
	}
}
