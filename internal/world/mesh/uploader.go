package mesh

// Handle - непрозрачный идентификатор буфера вершин на стороне рендера
type Handle uint32

// Uploader передаёт вершины в рендер. Реализуется графическим модулем.
type Uploader interface {
	Upload(vertices []Vertex) Handle
	Release(h Handle)
}

// Surface - закэшированная сетка поверхности региона
type Surface struct {
	Handle   Handle
	Vertices []Vertex
	Faces    int
}

// MemoryUploader - реализация Uploader без GPU (тесты, утилиты).
// Хранит только количество вершин по каждому живому буферу.
type MemoryUploader struct {
	next Handle
	live map[Handle]int
}

// NewMemoryUploader создаёт загрузчик в памяти
func NewMemoryUploader() *MemoryUploader {
	return &MemoryUploader{live: make(map[Handle]int)}
}

// Upload регистрирует новый буфер
func (u *MemoryUploader) Upload(vertices []Vertex) Handle {
	u.next++
	u.live[u.next] = len(vertices)
	return u.next
}

// Release освобождает буфер
func (u *MemoryUploader) Release(h Handle) {
	delete(u.live, h)
}

// Live возвращает количество неосвобождённых буферов
func (u *MemoryUploader) Live() int {
	return len(u.live)
}

// VertexCount возвращает количество вершин в буфере
func (u *MemoryUploader) VertexCount(h Handle) (int, bool) {
	n, ok := u.live[h]
	return n, ok
}
