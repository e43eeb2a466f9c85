package employee

// フィールド名は入力マップのキーとしても使われます。
const (
	FieldName    = "name"
	FieldAge     = "age"
	FieldJob     = "job"
	FieldEmail   = "email"
	FieldGender  = "gender"
	FieldPhone   = "phone"
	FieldAddress = "address"
)

// RequiredFields は必須チェックを行う順序です。
var RequiredFields = []string{
	FieldName,
	FieldAge,
	FieldJob,
	FieldEmail,
	FieldGender,
	FieldPhone,
	FieldAddress,
}

// Fields は画面やコマンドから受け取る生の入力値です。
type Fields map[string]string

// Employee は社員レコードです。ID が 0 のものは未永続化を表します。
type Employee struct {
	ID      int64
	Name    string
	Age     string
	Job     string
	Email   string
	Gender  string
	Phone   string
	Address string
}

// Persisted はストアが採番済みかどうかを返します。
func (e *Employee) Persisted() bool {
	return e != nil && e.ID > 0
}

// Fields はレコードを入力マップ形式に戻します。
func (e *Employee) Fields() Fields {
	return Fields{
		FieldName:    e.Name,
		FieldAge:     e.Age,
		FieldJob:     e.Job,
		FieldEmail:   e.Email,
		FieldGender:  e.Gender,
		FieldPhone:   e.Phone,
		FieldAddress: e.Address,
	}
}

func newEmployee(id int64, fields Fields) *Employee {
	return &Employee{
		ID:      id,
		Name:    fields[FieldName],
		Age:     fields[FieldAge],
		Job:     fields[FieldJob],
		Email:   fields[FieldEmail],
		Gender:  fields[FieldGender],
		Phone:   fields[FieldPhone],
		Address: fields[FieldAddress],
	}
}
