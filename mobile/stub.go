//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 普通构建时 mobile.go 和 embed.go 都不参与编译，
// 此文件保证 ./mobile 仍是一个合法的包。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
